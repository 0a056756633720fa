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

package paging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var errLoad = errors.New("load failed")

// staticLoad serves pages out of a fixed window of total items.
func staticLoad(total int) LoadFunc[int] {
	return func(_ context.Context, page, pageSize int) ([]int, error) {
		start := (page - 1) * pageSize
		if start >= total {
			return []int{}, nil
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		items := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, i)
		}
		return items, nil
	}
}

func TestLoadFirstPage(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(45), 20)
	page, err := pager.Load(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Key)
	assert.Len(t, page.Items, 20)
	assert.Nil(t, page.PrevKey, "page 1 has no previous page")
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 2, *page.NextKey)
	assert.Equal(t, StatusLoaded, pager.Status(1))
}

func TestLoadMiddlePage(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(45), 20)
	page, err := pager.Load(context.Background(), 2)
	require.NoError(t, err)

	require.NotNil(t, page.PrevKey)
	assert.Equal(t, 1, *page.PrevKey)
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 3, *page.NextKey)
}

func TestEmptyPageIsTerminalNotError(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(45), 20)
	page, err := pager.Load(context.Background(), 4)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Nil(t, page.NextKey, "empty results end the sequence")
	require.NotNil(t, page.PrevKey)
	assert.Equal(t, 3, *page.PrevKey)
	assert.Equal(t, StatusLoaded, pager.Status(4))
}

func TestPageErrorIsScopedAndRetryable(t *testing.T) {
	t.Parallel()

	failing := true
	load := func(ctx context.Context, page, pageSize int) ([]int, error) {
		if page == 2 && failing {
			return nil, errLoad
		}
		return staticLoad(45)(ctx, page, pageSize)
	}

	pager := NewPager(load, 20)
	_, err := pager.Load(context.Background(), 1)
	require.NoError(t, err)

	_, err = pager.Load(context.Background(), 2)
	require.ErrorIs(t, err, errLoad)
	assert.Equal(t, StatusErrored, pager.Status(2))
	require.ErrorIs(t, pager.PageErr(2), errLoad)

	// Page 1 is untouched by page 2's failure.
	page1, ok := pager.Page(1)
	require.True(t, ok)
	assert.Len(t, page1.Items, 20)

	// Retrying the same key succeeds and clears the error.
	failing = false
	page2, err := pager.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 20)
	assert.Equal(t, StatusLoaded, pager.Status(2))
	require.NoError(t, pager.PageErr(2))
}

func TestRefreshKeyAnchorsToViewedPage(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(100), 20)
	for key := 1; key <= 3; key++ {
		_, err := pager.Load(context.Background(), key)
		require.NoError(t, err)
	}

	// Anchored at page 3: prevKey(2)+1 = 3.
	key := pager.RefreshKey(3)
	require.NotNil(t, key)
	assert.Equal(t, 3, *key)

	// Anchored at page 1: no prev key, falls back to nextKey(2)-1 = 1.
	key = pager.RefreshKey(1)
	require.NotNil(t, key)
	assert.Equal(t, 1, *key)

	// Anchor beyond loaded pages resolves to the closest loaded page.
	key = pager.RefreshKey(10)
	require.NotNil(t, key)
	assert.Equal(t, 3, *key)
}

func TestRefreshKeyNilWithoutPages(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(100), 20)
	assert.Nil(t, pager.RefreshKey(1))
}

func TestResetDiscardsPages(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(100), 20)
	_, err := pager.Load(context.Background(), 1)
	require.NoError(t, err)

	pager.Reset()

	assert.Equal(t, StatusAwaiting, pager.Status(1))
	_, ok := pager.Page(1)
	assert.False(t, ok)
	assert.Nil(t, pager.RefreshKey(1))
}

func TestConcurrentLoadsComplete(t *testing.T) {
	t.Parallel()

	pager := NewPager(staticLoad(1000), 20)

	var wg sync.WaitGroup
	for key := 1; key <= 10; key++ {
		wg.Add(1)
		key := key
		go func() {
			defer wg.Done()
			_, err := pager.Load(context.Background(), key)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for key := 1; key <= 10; key++ {
		assert.Equal(t, StatusLoaded, pager.Status(key), "page %d", key)
	}
}

// Key math properties: prevKey is nil iff key==1, nextKey is nil iff
// the page came back empty, regardless of key.
func TestPageKeyProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		key := rapid.IntRange(1, 10_000).Draw(t, "key")
		count := rapid.IntRange(0, 50).Draw(t, "count")

		load := func(context.Context, int, int) ([]int, error) {
			return make([]int, count), nil
		}
		pager := NewPager(load, 20)

		page, err := pager.Load(context.Background(), key)
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}

		if key == 1 {
			if page.PrevKey != nil {
				t.Fatalf("prevKey for page 1 should be nil, got %d", *page.PrevKey)
			}
		} else {
			if page.PrevKey == nil || *page.PrevKey != key-1 {
				t.Fatalf("prevKey for page %d should be %d", key, key-1)
			}
		}

		if count == 0 {
			if page.NextKey != nil {
				t.Fatalf("nextKey for empty page should be nil, got %d", *page.NextKey)
			}
		} else if page.NextKey == nil || *page.NextKey != key+1 {
			t.Fatalf("nextKey for page %d with %d items should be %d", key, count, key+1)
		}
	})
}

func ExamplePager_Load() {
	pager := NewPager(staticLoad(30), 20)
	page, _ := pager.Load(context.Background(), 1)
	fmt.Println(len(page.Items), page.PrevKey == nil, *page.NextKey)
	// Output: 20 true 2
}
