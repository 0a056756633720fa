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

// Package paging implements the incremental page loader behind the
// filtered game list. A Pager is bound to one filter configuration;
// page keys start at 1 and a nil key means no further page in that
// direction. Page load failures are scoped to their key: already
// loaded pages survive and the same key can be retried.
package paging

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// LoadFunc fetches one page of items for a fixed filter configuration.
type LoadFunc[T any] func(ctx context.Context, page, pageSize int) ([]T, error)

// Status describes the lifecycle of a single page request.
type Status int

const (
	// StatusAwaiting means the page has not been requested yet.
	StatusAwaiting Status = iota
	// StatusLoaded means the page is cached with its neighbor keys.
	StatusLoaded
	// StatusErrored means the last request for this key failed.
	StatusErrored
)

// Page is one loaded page with its neighbor keys. PrevKey is nil iff
// Key is 1; NextKey is nil iff the page was empty (a valid terminal
// page, not an error).
type Page[T any] struct {
	PrevKey *int
	NextKey *int
	Items   []T
	Key     int
}

// Pager loads and caches pages for one filter configuration. It is
// safe for concurrent use; overlapping loads for different keys may
// complete out of order and are recorded independently.
type Pager[T any] struct {
	load     LoadFunc[T]
	pages    map[int]Page[T]
	errs     map[int]error
	pageSize int
	mu       sync.RWMutex
}

// NewPager creates a Pager over load with a fixed page size.
func NewPager[T any](load LoadFunc[T], pageSize int) *Pager[T] {
	return &Pager[T]{
		load:     load,
		pageSize: pageSize,
		pages:    make(map[int]Page[T]),
		errs:     make(map[int]error),
	}
}

// PageSize returns the fixed page size used for every load.
func (p *Pager[T]) PageSize() int {
	return p.pageSize
}

// Load fetches the page for key, caches it and returns it. On failure
// the error is recorded for that key only and the caller may retry the
// same key later.
func (p *Pager[T]) Load(ctx context.Context, key int) (Page[T], error) {
	items, err := p.load(ctx, key, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		log.Debug().Int("page", key).Err(err).Msg("page load failed")
		p.errs[key] = err
		return Page[T]{Key: key}, err
	}

	page := Page[T]{
		Key:     key,
		Items:   items,
		PrevKey: prevKey(key),
		NextKey: nextKey(key, len(items)),
	}
	p.pages[key] = page
	delete(p.errs, key)
	return page, nil
}

// Status reports the state of the page at key.
func (p *Pager[T]) Status(key int) Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.pages[key]; ok {
		return StatusLoaded
	}
	if _, ok := p.errs[key]; ok {
		return StatusErrored
	}
	return StatusAwaiting
}

// Page returns the cached page at key, if loaded.
func (p *Pager[T]) Page(key int) (Page[T], bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	page, ok := p.pages[key]
	return page, ok
}

// PageErr returns the recorded error for key, if its last load failed.
func (p *Pager[T]) PageErr(key int) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.errs[key]
}

// RefreshKey resolves the page key a refresh should restart from, given
// the key of the page nearest the position the user is viewing. It
// re-anchors to that page rather than restarting at 1: the closest
// page's PrevKey+1, falling back to NextKey-1 when there is no previous
// key. Returns nil when nothing is loaded.
func (p *Pager[T]) RefreshKey(anchorKey int) *int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	closest, ok := p.closestPage(anchorKey)
	if !ok {
		return nil
	}
	if closest.PrevKey != nil {
		key := *closest.PrevKey + 1
		return &key
	}
	if closest.NextKey != nil {
		key := *closest.NextKey - 1
		return &key
	}
	return nil
}

// closestPage finds the loaded page whose key is nearest to anchorKey.
func (p *Pager[T]) closestPage(anchorKey int) (Page[T], bool) {
	var closest Page[T]
	found := false
	bestDist := 0
	for key, page := range p.pages {
		dist := key - anchorKey
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist || (dist == bestDist && key < closest.Key) {
			closest = page
			bestDist = dist
			found = true
		}
	}
	return closest, found
}

// Reset discards all cached pages and errors. Used when the filter
// configuration changes and the sequence restarts at key 1.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pages = make(map[int]Page[T])
	p.errs = make(map[int]error)
}

func prevKey(key int) *int {
	if key == 1 {
		return nil
	}
	k := key - 1
	return &k
}

func nextKey(key, resultCount int) *int {
	if resultCount == 0 {
		return nil
	}
	k := key + 1
	return &k
}
