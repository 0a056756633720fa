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

// Package tui renders the catalog browser in the terminal. It only
// renders view-model state and forwards user intents as events; all
// orchestration lives in pkg/viewmodel.
package tui

import (
	"context"

	"github.com/mobileni/gamehunt/pkg/viewmodel"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	pageHome   = "home"
	pageDetail = "detail"
)

// Run builds the terminal UI and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, home *viewmodel.Home, detail *viewmodel.Detail) error {
	app := tview.NewApplication()
	pages := tview.NewPages()

	detailScreen := newDetailScreen(app, pages, detail)
	homeScreen := newHomeScreen(app, home)

	pages.AddPage(pageHome, homeScreen.root, true, true)
	pages.AddPage(pageDetail, detailScreen.root, true, false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Redraw on view-model updates; open the detail page on navigation
	// effects. Effects are consumed exactly once.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-home.Updates():
				app.QueueUpdateDraw(homeScreen.render)
			case effect := <-home.Effects():
				if nav, ok := effect.(viewmodel.NavigateToDetail); ok {
					log.Debug().Str("slug", nav.Slug).Msg("opening game detail")
					app.QueueUpdateDraw(func() {
						pages.SwitchToPage(pageDetail)
					})
					detail.OnEvent(viewmodel.Load{Slug: nav.Slug})
				}
			case <-detail.Updates():
				app.QueueUpdateDraw(detailScreen.render)
			case effect := <-detail.Effects():
				if share, ok := effect.(viewmodel.ShareIntent); ok {
					app.QueueUpdateDraw(func() {
						detailScreen.showShare(share)
					})
				}
			}
		}
	}()

	go func() {
		<-ctx.Done()
		app.QueueUpdate(app.Stop)
	}()

	home.Start()

	if err := app.SetRoot(pages, true).EnableMouse(true).Run(); err != nil {
		return err //nolint:wrapcheck // terminal error surfaced as-is
	}
	return nil
}
