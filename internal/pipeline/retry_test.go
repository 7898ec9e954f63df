// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryTransientSucceedsOnSecondAttempt(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Millisecond}

	attempts := 0
	err := policy.Run(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return Transient(errors.New("flaky"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestRetryFatalStopsImmediately(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, InitialBackoff: time.Millisecond}

	fatal := errors.New("bad template id")
	attempts := 0
	err := policy.Run(context.Background(), func(ctx context.Context) error {
		attempts++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Errorf("err = %v, want the fatal error", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, fatal errors must not retry", attempts)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Millisecond}

	transient := errors.New("still down")
	attempts := 0
	err := policy.Run(context.Background(), func(ctx context.Context) error {
		attempts++
		return Transient(transient)
	})
	if !errors.Is(err, transient) {
		t.Errorf("err = %v, want the underlying error", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want MaxAttempts", attempts)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	policy := RetryPolicy{}

	attempts := 0
	err := policy.Run(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 10, InitialBackoff: 50 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := policy.Run(ctx, func(ctx context.Context) error {
		attempts++
		return Transient(errors.New("down"))
	})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if attempts >= 10 {
		t.Errorf("attempts = %d, cancellation should cut retries short", attempts)
	}
}
