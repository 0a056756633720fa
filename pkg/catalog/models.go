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

// Package catalog holds the domain model of the game catalog and the
// mapping from wire responses. Entities are immutable value objects:
// strings are never nil, lists are never nil, and only ReleaseDate
// keeps pointer semantics so "unknown" stays distinct from "empty".
package catalog

import "time"

// Game is a single catalog list entry.
type Game struct {
	ReleaseDate *string
	Name        string
	Slug        string
	ImageURL    string
	Genres      []string
	ID          int
	Rating      float64
}

// GameDetail is the full record shown on a detail screen.
type GameDetail struct {
	Slug            string
	Name            string
	Description     string
	BackgroundImage string
	DominantColor   string
	Website         string
	Genres          []Genre
	ID              int
	Rating          float64
}

// Genre is a catalog genre. GamesCount and the image come from the
// server's genre listing.
type Genre struct {
	Name       string
	Slug       string
	ImageURL   string
	ID         int
	GamesCount int
}

// Screenshot is one screenshot image scoped to a game.
type Screenshot struct {
	ImageURL string
	ID       int
}

// FormatReleaseDate renders an ISO release date as "Jan 2006" for
// display. Unparseable input is returned unchanged.
func FormatReleaseDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2006")
}
