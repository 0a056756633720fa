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

package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientWithTimeout(t *testing.T) {
	t.Parallel()

	client := NewClientWithTimeout(5 * time.Second)
	require.NotNil(t, client)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewClient()
	resp, err := client.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// failDialTransport fails the first dial attempt and counts calls.
type countingTransport struct {
	err   error
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	if t.calls == 1 && t.err != nil {
		return nil, t.err
	}
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestRetryTransportRetriesDialFailure(t *testing.T) {
	t.Parallel()

	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: assert.AnError}
	counting := &countingTransport{err: dialErr}
	client := &http.Client{Transport: &RetryTransport{Base: counting}}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.invalid/", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, 2, counting.calls, "dial failure should be retried exactly once")
}

func TestRetryTransportDoesNotRetryReadErrors(t *testing.T) {
	t.Parallel()

	counting := &countingTransport{err: assert.AnError}
	client := &http.Client{Transport: &RetryTransport{Base: counting}}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.invalid/", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req) //nolint:bodyclose // no response on error
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 1, counting.calls, "non-dial errors must not be retried")
}

func TestRetryTransportDoesNotRetryNonIdempotent(t *testing.T) {
	t.Parallel()

	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: assert.AnError}
	counting := &countingTransport{err: dialErr}
	client := &http.Client{Transport: &RetryTransport{Base: counting}}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, "http://example.invalid/", http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req) //nolint:bodyclose // no response on error
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 1, counting.calls)
}
