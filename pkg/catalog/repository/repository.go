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

// Package repository wraps the catalog API client behind one interface
// per aggregate. Every call issues exactly one fresh request, maps the
// response into domain entities and converts client errors into
// human-readable ones. No retries, no caching.
package repository

import (
	"context"

	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/catalog/paging"
)

// GenreRepository serves the genre listing.
type GenreRepository interface {
	GetGenres(ctx context.Context) ([]catalog.Genre, error)
}

// GameRepository serves the popular games row and the filtered,
// paginated search.
type GameRepository interface {
	GetPopularGames(ctx context.Context) ([]catalog.Game, error)
	SearchGames(genreSlug, search string) *paging.Pager[catalog.Game]
}

// GameDetailRepository serves a single game's detail record and its
// screenshots.
type GameDetailRepository interface {
	GetGameDetail(ctx context.Context, slug string) (catalog.GameDetail, error)
	GetGameScreenshots(ctx context.Context, gameID int) ([]catalog.Screenshot, error)
}
