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

const pexelsDefaultBaseURL = "https://api.pexels.com"

// pexels implements SearchProvider against the Pexels photo API.
type pexels struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newPexels(cfg ProviderConfig) *pexels {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = pexelsDefaultBaseURL
	}
	return &pexels{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *pexels) Name() string { return "pexels" }

// Search queries /v1/search for landscape results and returns the "large"
// size URL of each photo.
func (p *pexels) Search(ctx context.Context, query string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(limit))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pexels request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels search: status %d", resp.StatusCode)
	}

	var body struct {
		Photos []struct {
			Src struct {
				Large string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("pexels decode: %w", err)
	}

	urls := make([]string, 0, len(body.Photos))
	for _, ph := range body.Photos {
		if ph.Src.Large != "" {
			urls = append(urls, ph.Src.Large)
		}
	}
	return urls, nil
}
