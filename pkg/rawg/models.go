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

package rawg

// GameListResponse is the paginated envelope returned by /games.
type GameListResponse struct {
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []GameResponse `json:"results"`
	Count    int            `json:"count"`
}

// GameResponse is a single list item within /games results.
type GameResponse struct {
	BackgroundImage *string            `json:"background_image"`
	Released        *string            `json:"released"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Genres          []GenreTagResponse `json:"genres"`
	ID              int                `json:"id"`
	Rating          float64            `json:"rating"`
}

// GenreTagResponse is the abbreviated genre reference attached to a game
// list item.
type GenreTagResponse struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// GenreListResponse is the envelope returned by /genres.
type GenreListResponse struct {
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []GenreResponse `json:"results"`
	Count    int             `json:"count"`
}

// GenreResponse is a full genre record.
type GenreResponse struct {
	Name            string                `json:"name"`
	Slug            string                `json:"slug"`
	ImageBackground string                `json:"image_background"`
	Games           []GamePreviewResponse `json:"games,omitempty"`
	ID              int                   `json:"id"`
	GamesCount      int                   `json:"games_count"`
}

// GamePreviewResponse is the short game preview embedded in a genre record.
type GamePreviewResponse struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Added int    `json:"added"`
}

// GameDetailResponse is the payload returned by /games/{slug}.
type GameDetailResponse struct {
	DescriptionRaw  *string         `json:"description_raw"`
	BackgroundImage *string         `json:"background_image"`
	DominantColor   *string         `json:"dominant_color"`
	Website         *string         `json:"website"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Genres          []GenreResponse `json:"genres"`
	ID              int             `json:"id"`
	Rating          float64         `json:"rating"`
}

// ScreenshotListResponse is the envelope returned by /games/{id}/screenshots.
type ScreenshotListResponse struct {
	Results []ScreenshotResponse `json:"results"`
}

// ScreenshotResponse is a single screenshot record.
type ScreenshotResponse struct {
	Image string `json:"image"`
	ID    int    `json:"id"`
}
