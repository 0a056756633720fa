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

// Package usecase exposes one operation per user-visible action. Each
// use case forwards to exactly one repository method.
package usecase

import (
	"context"

	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/catalog/paging"
	"github.com/mobileni/gamehunt/pkg/catalog/repository"
)

// GetGenres loads the genre list.
type GetGenres struct {
	genres repository.GenreRepository
}

func NewGetGenres(genres repository.GenreRepository) GetGenres {
	return GetGenres{genres: genres}
}

func (u GetGenres) Call(ctx context.Context) ([]catalog.Genre, error) {
	return u.genres.GetGenres(ctx) //nolint:wrapcheck // pass-through by contract
}

// GetPopularGames loads the popular games row.
type GetPopularGames struct {
	games repository.GameRepository
}

func NewGetPopularGames(games repository.GameRepository) GetPopularGames {
	return GetPopularGames{games: games}
}

func (u GetPopularGames) Call(ctx context.Context) ([]catalog.Game, error) {
	return u.games.GetPopularGames(ctx) //nolint:wrapcheck // pass-through by contract
}

// SearchGames opens a paginated search for one filter configuration.
type SearchGames struct {
	games repository.GameRepository
}

func NewSearchGames(games repository.GameRepository) SearchGames {
	return SearchGames{games: games}
}

func (u SearchGames) Call(genreSlug, search string) *paging.Pager[catalog.Game] {
	return u.games.SearchGames(genreSlug, search)
}

// GetGameDetail loads one game's detail record.
type GetGameDetail struct {
	details repository.GameDetailRepository
}

func NewGetGameDetail(details repository.GameDetailRepository) GetGameDetail {
	return GetGameDetail{details: details}
}

func (u GetGameDetail) Call(ctx context.Context, slug string) (catalog.GameDetail, error) {
	return u.details.GetGameDetail(ctx, slug) //nolint:wrapcheck // pass-through by contract
}

// GetGameScreenshots loads the screenshots for a game id.
type GetGameScreenshots struct {
	details repository.GameDetailRepository
}

func NewGetGameScreenshots(details repository.GameDetailRepository) GetGameScreenshots {
	return GetGameScreenshots{details: details}
}

func (u GetGameScreenshots) Call(ctx context.Context, gameID int) ([]catalog.Screenshot, error) {
	return u.details.GetGameScreenshots(ctx, gameID) //nolint:wrapcheck // pass-through by contract
}
