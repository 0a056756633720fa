// GameHunt
// Copyright (c) 2026 The GameHunt Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of GameHunt.
//
// GameHunt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GameHunt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GameHunt.  If not, see <http://www.gnu.org/licenses/>.

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mobileni/gamehunt/pkg/viewmodel"
	"github.com/rivo/tview"
)

type detailScreen struct {
	vm    *viewmodel.Detail
	app   *tview.Application
	pages *tview.Pages
	root  *tview.Flex
	text  *tview.TextView
	hint  *tview.TextView
}

func newDetailScreen(app *tview.Application, pages *tview.Pages, vm *viewmodel.Detail) *detailScreen {
	s := &detailScreen{
		vm:    vm,
		app:   app,
		pages: pages,
		text:  tview.NewTextView(),
		hint:  tview.NewTextView(),
	}

	s.text.SetDynamicColors(true)
	s.text.SetWordWrap(true)
	s.text.SetBorder(true)

	s.hint.SetTextAlign(tview.AlignCenter)
	s.hint.SetText("S shares. R retries. ESC goes back.")

	s.root = tview.NewFlex().SetDirection(tview.FlexRow)
	s.root.AddItem(s.text, 0, 1, true)
	s.root.AddItem(s.hint, 1, 0, false)

	s.root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			pages.SwitchToPage(pageHome)
			return nil
		case event.Rune() == 'r':
			vm.OnEvent(viewmodel.RetryDetail{})
			return nil
		case event.Rune() == 's':
			state := vm.State()
			if state.Detail != nil {
				vm.OnEvent(viewmodel.ShareGame{
					Name:    state.Detail.Name,
					Website: state.Detail.Website,
				})
			}
			return nil
		}
		return event
	})

	return s
}

func (s *detailScreen) render() {
	state := s.vm.State()
	switch {
	case state.Loading:
		s.text.SetTitle("Loading")
		s.text.SetText("Loading game...")
		return
	case state.Err != "":
		s.text.SetTitle("Error")
		s.text.SetText("[red]" + tview.Escape(state.Err) + "[-]\n\nPress R to retry.")
		return
	case state.Detail == nil:
		s.text.SetText("")
		return
	}

	detail := state.Detail
	var b strings.Builder
	fmt.Fprintf(&b, "[::b]%s[::-]\n\n", tview.Escape(detail.Name))
	fmt.Fprintf(&b, "Rating: %.2f / 5\n", detail.Rating)

	if len(detail.Genres) > 0 {
		names := make([]string, 0, len(detail.Genres))
		for _, g := range detail.Genres {
			names = append(names, g.Name)
		}
		fmt.Fprintf(&b, "Genres: %s\n", tview.Escape(strings.Join(names, ", ")))
	}
	if detail.Website != "" {
		fmt.Fprintf(&b, "Website: %s\n", tview.Escape(detail.Website))
	}
	b.WriteString("\n")
	b.WriteString(tview.Escape(stripTags(detail.Description)))
	b.WriteString("\n\n")

	shots := s.vm.Screenshots()
	switch {
	case shots.Loading:
		b.WriteString("Loading screenshots...\n")
	case shots.Err != "":
		fmt.Fprintf(&b, "[red]Screenshots: %s[-]\n", tview.Escape(shots.Err))
	default:
		for _, shot := range shots.Screenshots {
			fmt.Fprintf(&b, "Screenshot: %s\n", tview.Escape(shot.ImageURL))
		}
	}

	s.text.SetTitle(tview.Escape(detail.Name))
	s.text.SetText(b.String())
}

// showShare presents the composed share payload for copying out of the
// terminal.
func (s *detailScreen) showShare(intent viewmodel.ShareIntent) {
	const sharePage = "share"
	modal := tview.NewModal().
		SetText(intent.Title + "\n\n" + intent.Text).
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(int, string) {
			s.pages.RemovePage(sharePage)
			s.app.SetFocus(s.root)
		})
	s.pages.AddPage(sharePage, modal, true, true)
	s.app.SetFocus(modal)
}
