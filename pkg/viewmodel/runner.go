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

// Package viewmodel holds the per-screen UI state machines. View-models
// subscribe to use cases, gate search input, merge filters into one
// paginated request and emit one-shot effects for the presentation
// layer. All state updates happen atomically under a single mutex and
// stale completions are discarded by generation counters.
package viewmodel

import "context"

// Runner dispatches background work for a view-model. The production
// runner spawns goroutines bound to the screen's lifetime; tests
// substitute a synchronous runner so completions are deterministic.
type Runner func(fn func(ctx context.Context))

// GoRunner returns a Runner that executes work on a new goroutine
// bound to ctx. Cancelling ctx cancels in-flight requests.
func GoRunner(ctx context.Context) Runner {
	return func(fn func(ctx context.Context)) {
		go fn(ctx)
	}
}

// SyncRunner returns a Runner that executes work inline on the calling
// goroutine.
func SyncRunner(ctx context.Context) Runner {
	return func(fn func(ctx context.Context)) {
		fn(ctx)
	}
}
