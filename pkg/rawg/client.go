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

// Package rawg implements the client for the RAWG video game catalog
// API. All operations are read-only GETs authenticated by a static API
// key query parameter. Failures are classified into NetworkError,
// HTTPError and DecodeError; no retries happen at this layer.
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mobileni/gamehunt/pkg/config"
	"github.com/mobileni/gamehunt/pkg/shared/httpclient"
	"github.com/rs/zerolog/log"
)

// Client issues requests against the RAWG API.
type Client struct {
	client  *httpclient.Client
	baseURL string
	apiKey  string
}

// NewClient creates a Client using the configured base URL, API key and
// transport timeout.
func NewClient(cfg *config.Instance) *Client {
	return &Client{
		client:  httpclient.NewClientFromConfig(cfg),
		baseURL: strings.TrimSuffix(cfg.BaseURL(), "/"),
		apiKey:  cfg.APIKey(),
	}
}

// NewClientWith creates a Client with explicit collaborators, used by tests.
func NewClientWith(client *httpclient.Client, baseURL, apiKey string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// GamesQuery holds the optional filters and the page window for GetGames.
type GamesQuery struct {
	// Metacritic is a score range filter such as "90,100".
	Metacritic string
	// GenreSlug filters results to a single genre.
	GenreSlug string
	// Search is a free-text query.
	Search string
	// Page is the 1-based page key.
	Page int
	// PageSize is the number of results per page.
	PageSize int
}

// GetGenres retrieves the full list of game genres.
func (c *Client) GetGenres(ctx context.Context) (*GenreListResponse, error) {
	reqURL := c.buildURL("/genres", nil)
	return getJSON[GenreListResponse](ctx, c, reqURL)
}

// GetGames retrieves one page of games matching the query filters.
func (c *Client) GetGames(ctx context.Context, query GamesQuery) (*GameListResponse, error) {
	params := url.Values{}
	if query.Metacritic != "" {
		params.Set("metacritic", query.Metacritic)
	}
	if query.GenreSlug != "" {
		params.Set("genres", query.GenreSlug)
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("page_size", strconv.Itoa(query.PageSize))

	reqURL := c.buildURL("/games", params)
	return getJSON[GameListResponse](ctx, c, reqURL)
}

// GetGameDetail retrieves the full record for a single game by slug.
func (c *Client) GetGameDetail(ctx context.Context, slug string) (*GameDetailResponse, error) {
	reqURL := c.buildURL("/games/"+url.PathEscape(slug), nil)
	return getJSON[GameDetailResponse](ctx, c, reqURL)
}

// GetScreenshots retrieves up to pageSize screenshots for a game by its
// numeric id.
func (c *Client) GetScreenshots(ctx context.Context, gameID, pageSize int) (*ScreenshotListResponse, error) {
	params := url.Values{}
	params.Set("page_size", strconv.Itoa(pageSize))

	reqURL := c.buildURL(fmt.Sprintf("/games/%d/screenshots", gameID), params)
	return getJSON[ScreenshotListResponse](ctx, c, reqURL)
}

// buildURL composes the endpoint URL with the API key always present.
func (c *Client) buildURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)
	return c.baseURL + path + "?" + params.Encode()
}

// getJSON performs a GET and decodes the JSON payload, classifying
// failures into the client error taxonomy.
func getJSON[T any](ctx context.Context, c *Client, reqURL string) (*T, error) {
	log.Debug().Str("url", redactKey(reqURL)).Msg("RAWG API request")

	resp, err := c.client.Get(ctx, reqURL)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Status: resp.StatusCode}
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &payload, nil
}

// redactKey strips the API key value from a URL before logging it.
func redactKey(reqURL string) string {
	u, err := url.Parse(reqURL)
	if err != nil {
		return reqURL
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
