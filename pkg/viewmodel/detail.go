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

package viewmodel

import (
	"context"
	"sync"

	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/catalog/usecase"
	"github.com/rs/zerolog/log"
)

// DetailState is the game detail section.
type DetailState struct {
	Detail  *catalog.GameDetail
	Err     string
	Loading bool
}

// ScreenshotState is the screenshot strip below the detail.
type ScreenshotState struct {
	Err         string
	Screenshots []catalog.Screenshot
	Loading     bool
}

// DetailEvent is a user intent from the detail screen.
type DetailEvent interface{ isDetailEvent() }

// Load fetches the detail record for a slug.
type Load struct{ Slug string }

// RetryDetail re-issues the load for the last requested slug.
type RetryDetail struct{}

// ShareGame asks for the platform share sheet with a composed message.
// It never touches the network.
type ShareGame struct {
	Name    string
	Website string
}

func (Load) isDetailEvent()        {}
func (RetryDetail) isDetailEvent() {}
func (ShareGame) isDetailEvent()   {}

// DetailEffect is a one-shot action for the presentation layer.
type DetailEffect interface{ isDetailEffect() }

// ShareIntent carries the composed share payload.
type ShareIntent struct {
	Title string
	Text  string
}

func (ShareIntent) isDetailEffect() {}

// Detail drives the game detail screen: a slug-scoped load with a
// dependent screenshot fetch keyed by the obtained numeric id.
type Detail struct {
	getDetail      usecase.GetGameDetail
	getScreenshots usecase.GetGameScreenshots

	runner Runner

	effects chan DetailEffect
	updates chan struct{}

	detail      DetailState
	screenshots ScreenshotState
	slug        string
	gen         uint64

	mu sync.Mutex
}

// NewDetail creates the detail view-model.
func NewDetail(
	getDetail usecase.GetGameDetail,
	getScreenshots usecase.GetGameScreenshots,
	runner Runner,
) *Detail {
	return &Detail{
		getDetail:      getDetail,
		getScreenshots: getScreenshots,
		runner:         runner,
		effects:        make(chan DetailEffect, 8),
		updates:        make(chan struct{}, 1),
	}
}

// OnEvent handles a user intent.
func (d *Detail) OnEvent(event DetailEvent) {
	switch ev := event.(type) {
	case Load:
		d.load(ev.Slug)
	case RetryDetail:
		d.mu.Lock()
		slug := d.slug
		d.mu.Unlock()
		if slug == "" {
			return
		}
		d.load(slug)
	case ShareGame:
		d.emit(ShareIntent{
			Title: "Check out this game!",
			Text:  "Take a look at " + ev.Name + " on GameHunt!\n" + ev.Website,
		})
	}
}

// State returns the detail section state.
func (d *Detail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detail
}

// Screenshots returns the screenshot section state.
func (d *Detail) Screenshots() ScreenshotState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.screenshots
}

// Effects is the one-shot effect stream.
func (d *Detail) Effects() <-chan DetailEffect {
	return d.effects
}

// Updates signals state changes, coalesced.
func (d *Detail) Updates() <-chan struct{} {
	return d.updates
}

func (d *Detail) load(slug string) {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.slug = slug
	d.detail = DetailState{Loading: true}
	d.screenshots = ScreenshotState{}
	d.mu.Unlock()
	d.notify()

	d.runner(func(ctx context.Context) {
		detail, err := d.getDetail.Call(ctx, slug)

		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		if err != nil {
			// No dependent screenshot fetch on failure.
			d.detail = DetailState{Err: err.Error()}
			d.mu.Unlock()
			d.notify()
			return
		}
		d.detail = DetailState{Detail: &detail}
		d.screenshots = ScreenshotState{Loading: true}
		d.mu.Unlock()
		d.notify()

		d.loadScreenshots(ctx, gen, detail.ID)
	})
}

// loadScreenshots runs the dependent fetch, exactly once per
// successful detail load.
func (d *Detail) loadScreenshots(ctx context.Context, gen uint64, gameID int) {
	shots, err := d.getScreenshots.Call(ctx, gameID)

	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	if err != nil {
		d.screenshots = ScreenshotState{Err: err.Error()}
	} else {
		d.screenshots = ScreenshotState{Screenshots: shots}
	}
	d.mu.Unlock()
	d.notify()
}

func (d *Detail) emit(effect DetailEffect) {
	select {
	case d.effects <- effect:
	default:
		log.Warn().Msg("dropping detail effect, consumer not keeping up")
	}
}

func (d *Detail) notify() {
	select {
	case d.updates <- struct{}{}:
	default:
	}
}
