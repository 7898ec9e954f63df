// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const unsplashDefaultBaseURL = "https://api.unsplash.com"

// unsplash implements SearchProvider against the Unsplash search API.
type unsplash struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newUnsplash(cfg ProviderConfig) *unsplash {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = unsplashDefaultBaseURL
	}
	return &unsplash{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (u *unsplash) Name() string { return "unsplash" }

// Search queries /search/photos for landscape results and returns the
// "regular" size URL of each hit.
func (u *unsplash) Search(ctx context.Context, query string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		u.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.apiKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash search: status %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unsplash decode: %w", err)
	}

	urls := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		if r.URLs.Regular != "" {
			urls = append(urls, r.URLs.Regular)
		}
	}
	return urls, nil
}
