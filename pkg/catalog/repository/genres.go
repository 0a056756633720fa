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
	"github.com/mobileni/gamehunt/pkg/rawg"
)

// GenreRepo implements GenreRepository against the RAWG client.
type GenreRepo struct {
	client *rawg.Client
}

// NewGenreRepo creates a GenreRepo.
func NewGenreRepo(client *rawg.Client) *GenreRepo {
	return &GenreRepo{client: client}
}

// GetGenres fetches the flat genre list in server order.
func (r *GenreRepo) GetGenres(ctx context.Context) ([]catalog.Genre, error) {
	resp, err := r.client.GetGenres(ctx)
	if err != nil {
		return nil, userError(err)
	}
	return catalog.GenresFromResponse(resp), nil
}
