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

package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/mobileni/gamehunt/pkg/catalog"
	"github.com/mobileni/gamehunt/pkg/catalog/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetail(repo *fakeDetailRepo) *Detail {
	return NewDetail(
		usecase.NewGetGameDetail(repo),
		usecase.NewGetGameScreenshots(repo),
		SyncRunner(context.Background()),
	)
}

func TestLoadSuccessChainsScreenshots(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{
		detail: catalog.GameDetail{ID: 42, Slug: "x", Name: "X"},
		shots:  []catalog.Screenshot{{ID: 1, ImageURL: "https://img/1.jpg"}},
	}
	detail := newTestDetail(repo)

	detail.OnEvent(Load{Slug: "x"})

	state := detail.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
	require.NotNil(t, state.Detail)
	assert.Equal(t, 42, state.Detail.ID)

	shots := detail.Screenshots()
	assert.False(t, shots.Loading)
	require.Len(t, shots.Screenshots, 1)

	assert.Equal(t, []int{42}, repo.shotCallIDs(), "dependent fetch uses the obtained id, exactly once")
}

func TestLoadFailureSkipsScreenshots(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{detailErr: errors.New("timeout")}
	detail := newTestDetail(repo)

	detail.OnEvent(Load{Slug: "x"})

	state := detail.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Detail)
	assert.Equal(t, "timeout", state.Err)

	assert.Empty(t, repo.shotCallIDs(), "no screenshot fetch after a failed detail load")
}

func TestScreenshotFailureScopedToStrip(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{
		detail:   catalog.GameDetail{ID: 42, Slug: "x"},
		shotsErr: errors.New("HTTP 500"),
	}
	detail := newTestDetail(repo)

	detail.OnEvent(Load{Slug: "x"})

	require.NotNil(t, detail.State().Detail, "detail survives a screenshot failure")
	shots := detail.Screenshots()
	assert.Empty(t, shots.Screenshots)
	assert.Equal(t, "HTTP 500", shots.Err)
}

func TestRetryReissuesLastSlug(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{detailErr: errors.New("timeout")}
	detail := newTestDetail(repo)

	detail.OnEvent(Load{Slug: "the-witcher-3"})
	require.Equal(t, 1, repo.detailCallCount())

	// Retry works even when the failed load left no detail behind.
	repo.detailErr = nil
	repo.detail = catalog.GameDetail{ID: 7, Slug: "the-witcher-3"}
	detail.OnEvent(RetryDetail{})

	assert.Equal(t, 2, repo.detailCallCount())
	require.NotNil(t, detail.State().Detail)
	assert.Equal(t, "the-witcher-3", detail.State().Detail.Slug)
}

func TestRetryWithoutLoadIsNoop(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{}
	detail := newTestDetail(repo)

	detail.OnEvent(RetryDetail{})
	assert.Zero(t, repo.detailCallCount())
}

func TestShareGameEmitsIntentWithoutNetwork(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{}
	detail := newTestDetail(repo)

	detail.OnEvent(ShareGame{Name: "The Witcher 3", Website: "https://thewitcher.com"})

	select {
	case effect := <-detail.Effects():
		intent, ok := effect.(ShareIntent)
		require.True(t, ok)
		assert.Equal(t, "Check out this game!", intent.Title)
		assert.Equal(t, "Take a look at The Witcher 3 on GameHunt!\nhttps://thewitcher.com", intent.Text)
	default:
		t.Fatal("expected a share effect")
	}

	assert.Zero(t, repo.detailCallCount(), "sharing never calls the network")
	assert.Empty(t, repo.shotCallIDs())
}

func TestReloadSupersedesPreviousSlug(t *testing.T) {
	t.Parallel()

	repo := &fakeDetailRepo{detail: catalog.GameDetail{ID: 1, Slug: "first"}}
	detail := newTestDetail(repo)

	detail.OnEvent(Load{Slug: "first"})
	repo.detail = catalog.GameDetail{ID: 2, Slug: "second"}
	detail.OnEvent(Load{Slug: "second"})

	require.NotNil(t, detail.State().Detail)
	assert.Equal(t, "second", detail.State().Detail.Slug)
	assert.Equal(t, []int{1, 2}, repo.shotCallIDs())
}
