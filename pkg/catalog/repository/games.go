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

package repository

import (
	"context"

	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/catalog/paging"
	"github.com/mobileni/gamehunt/pkg/rawg"
)

const (
	// popularMetacritic selects only top-rated games for the popular row.
	popularMetacritic = "90,100"
	popularPageSize   = 10
	searchPageSize    = 20
)

// GameRepo implements GameRepository against the RAWG client.
type GameRepo struct {
	client *rawg.Client
}

// NewGameRepo creates a GameRepo.
func NewGameRepo(client *rawg.Client) *GameRepo {
	return &GameRepo{client: client}
}

// GetPopularGames fetches the fixed popular selection: metacritic
// 90-100, first page, ten entries.
func (r *GameRepo) GetPopularGames(ctx context.Context) ([]catalog.Game, error) {
	resp, err := r.client.GetGames(ctx, rawg.GamesQuery{
		Metacritic: popularMetacritic,
		Page:       1,
		PageSize:   popularPageSize,
	})
	if err != nil {
		return nil, userError(err)
	}
	return catalog.GamesFromResponse(resp), nil
}

// SearchGames returns a pager over games matching the genre and/or
// free-text filters. Both filters may be empty for the unfiltered list.
// The pager is bound to this filter configuration; a changed filter
// needs a new pager.
func (r *GameRepo) SearchGames(genreSlug, search string) *paging.Pager[catalog.Game] {
	load := func(ctx context.Context, page, pageSize int) ([]catalog.Game, error) {
		resp, err := r.client.GetGames(ctx, rawg.GamesQuery{
			GenreSlug: genreSlug,
			Search:    search,
			Page:      page,
			PageSize:  pageSize,
		})
		if err != nil {
			return nil, userError(err)
		}
		return catalog.GamesFromResponse(resp), nil
	}
	return paging.NewPager(load, searchPageSize)
}
