// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy is the explicit retry configuration passed into the
// orchestrator: how many attempts a job gets and where the exponential
// backoff starts. It replaces any ambient queue-library retry behavior.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

// DefaultRetryPolicy retries a failed job twice more after the first
// attempt, backing off exponentially from one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Second}
}

// Run executes fn under the policy. fn marks transient failures by
// returning retry.RetryableError; any other error stops immediately.
func (p RetryPolicy) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(p.InitialBackoff))
	return retry.Do(ctx, backoff, fn)
}

// Transient wraps an error so the policy retries it.
func Transient(err error) error {
	return retry.RetryableError(err)
}
