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

package catalog

import "github.com/mobileni/gamehunt/pkg/rawg"

// Mapping is total and never fails: absent strings become "", absent
// lists become empty slices.

// GameFromResponse maps a game list item to the domain entity.
func GameFromResponse(resp *rawg.GameResponse) Game {
	genres := make([]string, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, g.Name)
	}
	return Game{
		ID:          resp.ID,
		Name:        resp.Name,
		Slug:        resp.Slug,
		ImageURL:    orEmpty(resp.BackgroundImage),
		Rating:      resp.Rating,
		ReleaseDate: resp.Released,
		Genres:      genres,
	}
}

// GamesFromResponse maps a page of game list items.
func GamesFromResponse(resp *rawg.GameListResponse) []Game {
	games := make([]Game, 0, len(resp.Results))
	for i := range resp.Results {
		games = append(games, GameFromResponse(&resp.Results[i]))
	}
	return games
}

// GenreFromResponse maps a full genre record to the domain entity.
func GenreFromResponse(resp *rawg.GenreResponse) Genre {
	return Genre{
		ID:         resp.ID,
		Name:       resp.Name,
		Slug:       resp.Slug,
		ImageURL:   resp.ImageBackground,
		GamesCount: resp.GamesCount,
	}
}

// GenresFromResponse maps the genre listing.
func GenresFromResponse(resp *rawg.GenreListResponse) []Genre {
	genres := make([]Genre, 0, len(resp.Results))
	for i := range resp.Results {
		genres = append(genres, GenreFromResponse(&resp.Results[i]))
	}
	return genres
}

// GameDetailFromResponse maps a detail record to the domain entity.
func GameDetailFromResponse(resp *rawg.GameDetailResponse) GameDetail {
	genres := make([]Genre, 0, len(resp.Genres))
	for i := range resp.Genres {
		genres = append(genres, GenreFromResponse(&resp.Genres[i]))
	}
	return GameDetail{
		ID:              resp.ID,
		Slug:            resp.Slug,
		Name:            resp.Name,
		Description:     orEmpty(resp.DescriptionRaw),
		BackgroundImage: orEmpty(resp.BackgroundImage),
		Rating:          resp.Rating,
		DominantColor:   orEmpty(resp.DominantColor),
		Genres:          genres,
		Website:         orEmpty(resp.Website),
	}
}

// ScreenshotsFromResponse maps the screenshot listing.
func ScreenshotsFromResponse(resp *rawg.ScreenshotListResponse) []Screenshot {
	shots := make([]Screenshot, 0, len(resp.Results))
	for _, s := range resp.Results {
		shots = append(shots, Screenshot{ID: s.ID, ImageURL: s.Image})
	}
	return shots
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
