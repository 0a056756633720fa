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

const screenshotPageSize = 10

// GameDetailRepo implements GameDetailRepository against the RAWG client.
type GameDetailRepo struct {
	client *rawg.Client
}

// NewGameDetailRepo creates a GameDetailRepo.
func NewGameDetailRepo(client *rawg.Client) *GameDetailRepo {
	return &GameDetailRepo{client: client}
}

// GetGameDetail fetches the full record for one game by slug.
func (r *GameDetailRepo) GetGameDetail(ctx context.Context, slug string) (catalog.GameDetail, error) {
	resp, err := r.client.GetGameDetail(ctx, slug)
	if err != nil {
		return catalog.GameDetail{}, userError(err)
	}
	return catalog.GameDetailFromResponse(resp), nil
}

// GetGameScreenshots fetches up to ten screenshots for a game id.
func (r *GameDetailRepo) GetGameScreenshots(ctx context.Context, gameID int) ([]catalog.Screenshot, error) {
	resp, err := r.client.GetScreenshots(ctx, gameID, screenshotPageSize)
	if err != nil {
		return nil, userError(err)
	}
	return catalog.ScreenshotsFromResponse(resp), nil
}
