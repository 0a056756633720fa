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
	"github.com/mobileni/gamehunt/pkg/catalog/paging"
)

type searchCall struct {
	genreSlug string
	search    string
}

// fakeGameRepo implements repository.GameRepository for tests.
type fakeGameRepo struct {
	popularGames []catalog.Game
	popularErr   error

	// searchLoad serves filtered pages; defaults to empty pages.
	searchLoad func(ctx context.Context, call searchCall, page, pageSize int) ([]catalog.Game, error)

	searchCalls  []searchCall
	popularCalls int
	mu           sync.Mutex
}

func (f *fakeGameRepo) GetPopularGames(context.Context) ([]catalog.Game, error) {
	f.mu.Lock()
	f.popularCalls++
	f.mu.Unlock()
	if f.popularErr != nil {
		return nil, f.popularErr
	}
	return f.popularGames, nil
}

func (f *fakeGameRepo) SearchGames(genreSlug, search string) *paging.Pager[catalog.Game] {
	call := searchCall{genreSlug: genreSlug, search: search}
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, call)
	f.mu.Unlock()

	load := func(ctx context.Context, page, pageSize int) ([]catalog.Game, error) {
		if f.searchLoad == nil {
			return []catalog.Game{}, nil
		}
		return f.searchLoad(ctx, call, page, pageSize)
	}
	return paging.NewPager(load, 20)
}

func (f *fakeGameRepo) searchCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searchCalls)
}

func (f *fakeGameRepo) lastSearchCall() searchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls[len(f.searchCalls)-1]
}

func (f *fakeGameRepo) popularCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.popularCalls
}

// fakeGenreRepo implements repository.GenreRepository for tests.
type fakeGenreRepo struct {
	genres []catalog.Genre
	err    error
	calls  int
	mu     sync.Mutex
}

func (f *fakeGenreRepo) GetGenres(context.Context) ([]catalog.Genre, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.genres, nil
}

func (f *fakeGenreRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeDetailRepo implements repository.GameDetailRepository for tests.
type fakeDetailRepo struct {
	detail    catalog.GameDetail
	detailErr error
	shots     []catalog.Screenshot
	shotsErr  error

	detailCalls []string
	shotCalls   []int
	mu          sync.Mutex
}

func (f *fakeDetailRepo) GetGameDetail(_ context.Context, slug string) (catalog.GameDetail, error) {
	f.mu.Lock()
	f.detailCalls = append(f.detailCalls, slug)
	f.mu.Unlock()
	if f.detailErr != nil {
		return catalog.GameDetail{}, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeDetailRepo) GetGameScreenshots(_ context.Context, gameID int) ([]catalog.Screenshot, error) {
	f.mu.Lock()
	f.shotCalls = append(f.shotCalls, gameID)
	f.mu.Unlock()
	if f.shotsErr != nil {
		return nil, f.shotsErr
	}
	return f.shots, nil
}

func (f *fakeDetailRepo) detailCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.detailCalls)
}

func (f *fakeDetailRepo) shotCallIDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.shotCalls...)
}
