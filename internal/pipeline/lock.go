// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix = "sitesmith:generation:lock:"

	// lockTTL is a safety net: a crashed worker's lock expires on its own
	// so the business does not stay blocked forever.
	lockTTL = 10 * time.Minute
)

// BusinessLocker enforces at-most-one-in-flight generation per business.
// Acquire reports false when another job already holds the lock.
type BusinessLocker interface {
	Acquire(ctx context.Context, businessID uuid.UUID) (bool, error)
	Release(ctx context.Context, businessID uuid.UUID) error
}

// RedisLock is an advisory per-business lock on SET NX with a TTL.
type RedisLock struct {
	client *redis.Client
}

// NewRedisLock creates a lock manager on the given client.
func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{client: client}
}

// Acquire attempts to take the lock for a business.
func (l *RedisLock) Acquire(ctx context.Context, businessID uuid.UUID) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKeyPrefix+businessID.String(), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock. Releasing an expired lock is a no-op.
func (l *RedisLock) Release(ctx context.Context, businessID uuid.UUID) error {
	if err := l.client.Del(ctx, lockKeyPrefix+businessID.String()).Err(); err != nil {
		return fmt.Errorf("lock release: %w", err)
	}
	return nil
}
