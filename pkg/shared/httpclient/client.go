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

// Package httpclient provides the HTTP client used for all catalog
// requests. Transport policy lives here: connection pooling, a 50
// second connect/read timeout and a single automatic retry when the
// connection itself fails. Request-level concerns (auth params, error
// taxonomy) belong to the callers.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mobileni/gamehunt/pkg/config"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTimeoutSeconds is the default timeout for HTTP requests
	DefaultTimeoutSeconds = 50
)

// DefaultTransport provides a configured transport with connection pooling
var DefaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   DefaultTimeoutSeconds * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ResponseHeaderTimeout: DefaultTimeoutSeconds * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
}

// RetryTransport retries a request once when the connection fails before
// any response is received. Only idempotent bodyless requests are retried.
type RetryTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err == nil || !retriable(req, err) {
		return resp, err //nolint:wrapcheck // transparent transport wrapper
	}

	log.Warn().Err(err).Str("url", req.URL.String()).Msg("connection failed, retrying request once")
	resp, err = base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("request failed after retry: %w", err)
	}
	return resp, nil
}

func retriable(req *http.Request, err error) bool {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return false
	}
	if req.Context().Err() != nil {
		return false
	}
	// Retry connection-level failures only, never mid-response errors.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}

// Client provides an HTTP client with the catalog transport policy applied
type Client struct {
	*http.Client
}

// NewClient creates a new HTTP client with the default timeout
func NewClient() *Client {
	return NewClientWithTimeout(DefaultTimeoutSeconds * time.Second)
}

// NewClientWithTimeout creates a new HTTP client with a custom timeout
func NewClientWithTimeout(timeout time.Duration) *Client {
	return &Client{
		Client: &http.Client{
			Transport: &RetryTransport{
				Base: DefaultTransport,
			},
			Timeout: timeout,
		},
	}
}

// NewClientFromConfig creates a new HTTP client using the configured timeout
func NewClientFromConfig(cfg *config.Instance) *Client {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = DefaultTimeoutSeconds * time.Second
	}
	return NewClientWithTimeout(timeout)
}

// Get performs a GET request and returns the response
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error performing GET request: %w", err)
	}

	return resp, nil
}

// DefaultClient provides a shared HTTP client instance
var DefaultClient = NewClient()
