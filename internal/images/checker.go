// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Checker verifies that a candidate image URL actually exists. The
// interface allows tests to stub the network check.
type Checker interface {
	Check(ctx context.Context, imageURL string) error
}

// HeadChecker validates image URLs with a HEAD request: the URL must
// answer 200 with an image/* content type within 3 seconds.
type HeadChecker struct {
	client *http.Client
}

// NewHeadChecker returns a HeadChecker with a 3s per-request timeout.
func NewHeadChecker() *HeadChecker {
	return &HeadChecker{
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

// Check reports nil when the URL serves an image.
func (c *HeadChecker) Check(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return fmt.Errorf("image check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("image check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image check: status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("image check: content type %q is not an image", ct)
	}
	return nil
}
