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
	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/viewmodel"
	"github.com/rivo/tview"
)

type homeScreen struct {
	vm     *viewmodel.Home
	app    *tview.Application
	root   *tview.Flex
	search *tview.InputField
	genres *tview.List
	games  *tview.Table
	status *tview.TextView

	// slugs mirrors the games table rows for selection lookups.
	slugs []string
}

func newHomeScreen(app *tview.Application, vm *viewmodel.Home) *homeScreen {
	s := &homeScreen{
		vm:     vm,
		app:    app,
		search: tview.NewInputField(),
		genres: tview.NewList(),
		games:  tview.NewTable(),
		status: tview.NewTextView(),
	}

	s.search.SetLabel("Search ")
	s.search.SetChangedFunc(func(value string) {
		vm.OnEvent(viewmodel.SearchChanged{Query: value})
	})

	s.genres.ShowSecondaryText(false)
	s.genres.SetWrapAround(false)
	s.genres.SetTitle("Genres").SetBorder(true)
	s.genres.SetSelectedFunc(func(_ int, _, slug string, _ rune) {
		vm.OnEvent(viewmodel.GenreSelected{Slug: slug})
	})

	s.games.SetSelectable(true, false)
	s.games.SetTitle("Games").SetBorder(true)
	s.games.SetSelectedFunc(func(row, _ int) {
		if row >= 1 && row <= len(s.slugs) {
			vm.OnEvent(viewmodel.GameSelected{Slug: s.slugs[row-1]})
		}
	})
	s.games.SetSelectionChangedFunc(func(row, _ int) {
		// Infinite scroll: request the next page near the end.
		if row >= s.games.GetRowCount()-2 {
			vm.OnEvent(viewmodel.LoadMore{})
		}
	})

	s.status.SetTextAlign(tview.AlignCenter)
	s.status.SetText("Enter opens a game. R retries failed sections. Ctrl-C quits.")

	s.root = tview.NewFlex().SetDirection(tview.FlexRow)
	s.root.SetTitle("GameHunt")

	body := tview.NewFlex()
	body.AddItem(s.genres, 26, 0, false)
	body.AddItem(s.games, 0, 1, true)

	s.root.AddItem(s.search, 1, 0, false)
	s.root.AddItem(body, 0, 1, true)
	s.root.AddItem(s.status, 1, 0, false)

	s.root.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			s.cycleFocus()
			return nil
		case event.Rune() == 'r' && !s.search.HasFocus():
			vm.OnEvent(viewmodel.Retry{})
			return nil
		}
		return event
	})

	return s
}

func (s *homeScreen) cycleFocus() {
	switch {
	case s.search.HasFocus():
		s.app.SetFocus(s.genres)
	case s.genres.HasFocus():
		s.app.SetFocus(s.games)
	default:
		s.app.SetFocus(s.search)
	}
}

// render repaints every section from the current view-model state.
func (s *homeScreen) render() {
	s.renderGenres(s.vm.Genres())
	s.renderGames()
}

func (s *homeScreen) renderGenres(state viewmodel.GenresState) {
	current := s.genres.GetCurrentItem()
	s.genres.Clear()
	switch {
	case state.Loading:
		s.genres.AddItem("Loading...", "", 0, nil)
	case state.Err != "":
		s.genres.AddItem("[red]"+tview.Escape(state.Err), "", 0, nil)
	default:
		for _, g := range state.Genres {
			label := g.Name
			if state.SelectedGenreID != nil && *state.SelectedGenreID == g.ID {
				label = "* " + label
			}
			s.genres.AddItem(label, g.Slug, 0, nil)
		}
		if current < s.genres.GetItemCount() {
			s.genres.SetCurrentItem(current)
		}
	}
}

func (s *homeScreen) renderGames() {
	s.games.Clear()
	s.slugs = s.slugs[:0]

	header := []string{"Name", "Rating", "Released", "Genres"}
	for col, h := range header {
		s.games.SetCell(0, col, tview.NewTableCell("[::b]"+h).SetSelectable(false))
	}

	if s.vm.FilterActive() {
		s.renderGameRows(s.vm.Filtered().Games)
		s.renderFilteredStatus()
		return
	}

	// No filter: popular row first, then the unfiltered list.
	popular := s.vm.Popular()
	filtered := s.vm.Filtered()
	s.games.SetTitle(fmt.Sprintf("Games (%d popular)", len(popular.Games)))
	s.renderGameRows(append(append([]catalog.Game{}, popular.Games...), filtered.Games...))
	s.renderFilteredStatus()
}

func (s *homeScreen) renderGameRows(games []catalog.Game) {
	for i, game := range games {
		row := i + 1
		released := "TBA"
		if game.ReleaseDate != nil {
			released = catalog.FormatReleaseDate(*game.ReleaseDate)
		}
		s.games.SetCell(row, 0, tview.NewTableCell(tview.Escape(game.Name)))
		s.games.SetCell(row, 1, tview.NewTableCell(fmt.Sprintf("%.1f", game.Rating)))
		s.games.SetCell(row, 2, tview.NewTableCell(released))
		s.games.SetCell(row, 3, tview.NewTableCell(tview.Escape(strings.Join(game.Genres, ", "))))
		s.slugs = append(s.slugs, game.Slug)
	}
}

func (s *homeScreen) renderFilteredStatus() {
	filtered := s.vm.Filtered()
	switch {
	case filtered.Loading:
		s.status.SetText("Loading games...")
	case filtered.LoadingMore:
		s.status.SetText("Loading more...")
	case filtered.Err != "":
		s.status.SetText("[red]" + tview.Escape(filtered.Err) + "[-] (press R to retry)")
	case filtered.NextKey == nil:
		s.status.SetText("End of results.")
	default:
		s.status.SetText("Enter opens a game. R retries failed sections. Ctrl-C quits.")
	}
}
