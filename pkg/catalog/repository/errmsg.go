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
	"errors"
	"fmt"

	"github.com/mobileni/gamehunt/pkg/rawg"
)

// userError converts a client error into one whose message is fit for
// display. The original error stays wrapped for errors.As inspection.
func userError(err error) error {
	var netErr *rawg.NetworkError
	if errors.As(err, &netErr) {
		return fmt.Errorf("cannot reach the game catalog: %w", err)
	}

	var httpErr *rawg.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Errorf("the game catalog returned an error (HTTP %d): %w", httpErr.Status, err)
	}

	var decodeErr *rawg.DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Errorf("unexpected response from the game catalog: %w", err)
	}

	return fmt.Errorf("game catalog request failed: %w", err)
}
