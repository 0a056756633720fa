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
	"unicode/utf8"

	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/catalog/paging"
	"github.com/mobileni/gamehunt/pkg/catalog/usecase"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// searchMinLength is the length a search query must exceed before it
// triggers a reload. An empty query also triggers one, clearing the
// filter. Deliberately a length gate, not a time debounce.
const searchMinLength = 3

// GenresState is the genre filter section.
type GenresState struct {
	SelectedGenreID *int
	Err             string
	Genres          []catalog.Genre
	Loading         bool
}

// PopularState is the popular games section, shown when no filter is
// active.
type PopularState struct {
	Err     string
	Games   []catalog.Game
	Loading bool
}

// FilteredState is the merged, incrementally loaded game list for the
// current filter configuration.
type FilteredState struct {
	NextKey     *int
	Err         string
	Games       []catalog.Game
	Loading     bool
	LoadingMore bool
}

// HomeEvent is a user intent from the home screen.
type HomeEvent interface{ isHomeEvent() }

// SearchChanged reports new search input.
type SearchChanged struct{ Query string }

// GenreSelected toggles the genre filter. Selecting the already
// selected genre clears it.
type GenreSelected struct{ Slug string }

// Retry reloads every section unconditionally.
type Retry struct{}

// LoadMore requests the next page of the filtered list.
type LoadMore struct{}

// Refresh reloads the filtered list re-anchored to the page nearest
// AnchorKey instead of restarting at page 1.
type Refresh struct{ AnchorKey int }

// GameSelected asks for navigation to a game's detail screen.
type GameSelected struct{ Slug string }

func (SearchChanged) isHomeEvent() {}
func (GenreSelected) isHomeEvent() {}
func (Retry) isHomeEvent()         {}
func (LoadMore) isHomeEvent()      {}
func (Refresh) isHomeEvent()       {}
func (GameSelected) isHomeEvent()  {}

// HomeEffect is a one-shot action consumed exactly once by the
// presentation layer.
type HomeEffect interface{ isHomeEffect() }

// NavigateToDetail opens the detail screen for a game slug.
type NavigateToDetail struct{ Slug string }

func (NavigateToDetail) isHomeEffect() {}

// Home drives the home screen: genres, the popular row and the
// filtered, paginated game list.
type Home struct {
	getGenres   usecase.GetGenres
	getPopular  usecase.GetPopularGames
	searchGames usecase.SearchGames

	runner Runner

	pager    *paging.Pager[catalog.Game]
	effects  chan HomeEffect
	updates  chan struct{}
	genres   GenresState
	popular  PopularState
	filtered FilteredState
	query    string

	genresGen  uint64
	popularGen uint64
	filterGen  uint64

	mu sync.Mutex
}

// NewHome creates the home view-model. Call Start to load the initial
// data.
func NewHome(
	getGenres usecase.GetGenres,
	getPopular usecase.GetPopularGames,
	searchGames usecase.SearchGames,
	runner Runner,
) *Home {
	return &Home{
		getGenres:   getGenres,
		getPopular:  getPopular,
		searchGames: searchGames,
		runner:      runner,
		effects:     make(chan HomeEffect, 8),
		updates:     make(chan struct{}, 1),
	}
}

// Start loads all three sections.
func (h *Home) Start() {
	h.reloadAll()
}

// OnEvent handles a user intent.
func (h *Home) OnEvent(event HomeEvent) {
	switch ev := event.(type) {
	case SearchChanged:
		h.mu.Lock()
		h.query = ev.Query
		h.mu.Unlock()
		if utf8.RuneCountInString(ev.Query) > searchMinLength || ev.Query == "" {
			h.runner(h.loadFiltered)
		}
	case GenreSelected:
		h.toggleGenre(ev.Slug)
		h.runner(h.loadFiltered)
	case Retry:
		h.reloadAll()
	case LoadMore:
		h.runner(h.loadMore)
	case Refresh:
		h.runner(func(ctx context.Context) {
			h.refreshFiltered(ctx, ev.AnchorKey)
		})
	case GameSelected:
		h.emit(NavigateToDetail{Slug: ev.Slug})
	}
}

// Genres returns the genre section state.
func (h *Home) Genres() GenresState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.genres
}

// Popular returns the popular section state.
func (h *Home) Popular() PopularState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.popular
}

// Filtered returns the merged filtered-list state.
func (h *Home) Filtered() FilteredState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.filtered
}

// Query returns the current search input.
func (h *Home) Query() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.query
}

// FilterActive reports whether a genre or search filter is applied.
// The popular row is hidden while it is. A query at or below the
// reload gate is still typing, not a filter.
func (h *Home) FilterActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.genres.SelectedGenreID != nil ||
		utf8.RuneCountInString(h.query) > searchMinLength
}

// Effects is the one-shot effect stream. Each effect must be consumed
// exactly once.
func (h *Home) Effects() <-chan HomeEffect {
	return h.effects
}

// Updates signals that some section state changed. Notifications are
// coalesced; receivers re-read all sections.
func (h *Home) Updates() <-chan struct{} {
	return h.updates
}

func (h *Home) reloadAll() {
	h.runner(func(ctx context.Context) {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			h.loadGenres(gctx)
			return nil
		})
		g.Go(func() error {
			h.loadPopular(gctx)
			return nil
		})
		g.Go(func() error {
			h.loadFiltered(gctx)
			return nil
		})
		_ = g.Wait()
	})
}

func (h *Home) loadGenres(ctx context.Context) {
	h.mu.Lock()
	h.genresGen++
	gen := h.genresGen
	h.genres.Loading = true
	h.mu.Unlock()
	h.notify()

	genres, err := h.getGenres.Call(ctx)

	h.mu.Lock()
	if gen != h.genresGen {
		h.mu.Unlock()
		return
	}
	if err != nil {
		h.genres = GenresState{
			SelectedGenreID: h.genres.SelectedGenreID,
			Err:             err.Error(),
		}
	} else {
		h.genres = GenresState{
			SelectedGenreID: h.genres.SelectedGenreID,
			Genres:          genres,
		}
	}
	h.mu.Unlock()
	h.notify()
}

func (h *Home) loadPopular(ctx context.Context) {
	h.mu.Lock()
	h.popularGen++
	gen := h.popularGen
	h.popular.Loading = true
	h.mu.Unlock()
	h.notify()

	games, err := h.getPopular.Call(ctx)

	h.mu.Lock()
	if gen != h.popularGen {
		h.mu.Unlock()
		return
	}
	if err != nil {
		h.popular = PopularState{Err: err.Error()}
	} else {
		h.popular = PopularState{Games: games}
	}
	h.mu.Unlock()
	h.notify()
}

// toggleGenre applies the single-valued genre selection: picking the
// selected genre again clears it.
func (h *Home) toggleGenre(slug string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var selected *catalog.Genre
	for i := range h.genres.Genres {
		if h.genres.Genres[i].Slug == slug {
			selected = &h.genres.Genres[i]
			break
		}
	}

	if selected == nil {
		h.genres.SelectedGenreID = nil
		return
	}
	if h.genres.SelectedGenreID != nil && *h.genres.SelectedGenreID == selected.ID {
		h.genres.SelectedGenreID = nil
		return
	}
	id := selected.ID
	h.genres.SelectedGenreID = &id
}

// loadFiltered opens a fresh pager for the current filter configuration
// and loads page 1. Any in-flight filtered load is superseded.
func (h *Home) loadFiltered(ctx context.Context) {
	h.mu.Lock()
	h.filterGen++
	gen := h.filterGen
	pager := h.searchGames.Call(h.selectedGenreSlugLocked(), h.query)
	h.pager = pager
	h.filtered = FilteredState{Loading: true}
	h.mu.Unlock()
	h.notify()

	page, err := pager.Load(ctx, 1)
	h.applyFilteredPage(gen, page, err, false)
}

// loadMore fetches the next page of the current configuration and
// appends it to the merged list.
func (h *Home) loadMore(ctx context.Context) {
	h.mu.Lock()
	if h.pager == nil || h.filtered.Loading || h.filtered.LoadingMore || h.filtered.NextKey == nil {
		h.mu.Unlock()
		return
	}
	gen := h.filterGen
	pager := h.pager
	key := *h.filtered.NextKey
	h.filtered.LoadingMore = true
	h.mu.Unlock()
	h.notify()

	page, err := pager.Load(ctx, key)
	h.applyFilteredPage(gen, page, err, true)
}

// refreshFiltered reloads the current configuration starting from the
// page nearest the anchor rather than page 1.
func (h *Home) refreshFiltered(ctx context.Context, anchorKey int) {
	h.mu.Lock()
	pager := h.pager
	h.mu.Unlock()
	if pager == nil {
		h.loadFiltered(ctx)
		return
	}

	key := pager.RefreshKey(anchorKey)
	if key == nil {
		h.loadFiltered(ctx)
		return
	}
	pager.Reset()

	h.mu.Lock()
	h.filterGen++
	gen := h.filterGen
	h.filtered = FilteredState{Loading: true}
	h.mu.Unlock()
	h.notify()

	page, err := pager.Load(ctx, *key)
	h.applyFilteredPage(gen, page, err, false)
}

// applyFilteredPage records a completed page load unless a newer filter
// configuration has superseded it.
func (h *Home) applyFilteredPage(gen uint64, page paging.Page[catalog.Game], err error, appending bool) {
	h.mu.Lock()
	if gen != h.filterGen {
		h.mu.Unlock()
		log.Debug().Int("page", page.Key).Msg("discarding stale page result")
		return
	}
	switch {
	case err != nil && appending:
		// Scoped to this page: keep what is already shown.
		h.filtered.LoadingMore = false
		h.filtered.Err = err.Error()
	case err != nil:
		h.filtered = FilteredState{Err: err.Error()}
	case appending:
		h.filtered.LoadingMore = false
		h.filtered.Err = ""
		h.filtered.Games = append(h.filtered.Games, page.Items...)
		h.filtered.NextKey = page.NextKey
	default:
		h.filtered = FilteredState{Games: page.Items, NextKey: page.NextKey}
	}
	h.mu.Unlock()
	h.notify()
}

func (h *Home) selectedGenreSlugLocked() string {
	if h.genres.SelectedGenreID == nil {
		return ""
	}
	for _, g := range h.genres.Genres {
		if g.ID == *h.genres.SelectedGenreID {
			return g.Slug
		}
	}
	return ""
}

func (h *Home) emit(effect HomeEffect) {
	select {
	case h.effects <- effect:
	default:
		log.Warn().Msg("dropping home effect, consumer not keeping up")
	}
}

func (h *Home) notify() {
	select {
	case h.updates <- struct{}{}:
	default:
	}
}
