// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"sitesmith/internal/models"
)

// ErrJobNotFound is returned for status queries on unknown or expired jobs.
var ErrJobNotFound = errors.New("pipeline: job not found")

const (
	statusKeyPrefix = "sitesmith:generation:status:"

	// statusTTL keeps terminal statuses queryable for a day; after that
	// the business record is the source of truth.
	statusTTL = 24 * time.Hour
)

// StatusStore records the externally visible progress of each job.
type StatusStore interface {
	Set(ctx context.Context, jobID uuid.UUID, status models.JobStatus) error
	Get(ctx context.Context, jobID uuid.UUID) (*models.JobStatus, error)
}

// RedisStatusStore keeps job statuses as JSON values with a TTL.
type RedisStatusStore struct {
	client *redis.Client
}

// NewRedisStatusStore creates a status store on the given client.
func NewRedisStatusStore(client *redis.Client) *RedisStatusStore {
	return &RedisStatusStore{client: client}
}

// Set overwrites the status snapshot for a job and refreshes its TTL.
func (s *RedisStatusStore) Set(ctx context.Context, jobID uuid.UUID, status models.JobStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("status marshal: %w", err)
	}
	if err := s.client.Set(ctx, statusKeyPrefix+jobID.String(), payload, statusTTL).Err(); err != nil {
		return fmt.Errorf("status set: %w", err)
	}
	return nil
}

// Get returns the latest snapshot, or ErrJobNotFound.
func (s *RedisStatusStore) Get(ctx context.Context, jobID uuid.UUID) (*models.JobStatus, error) {
	payload, err := s.client.Get(ctx, statusKeyPrefix+jobID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("status get: %w", err)
	}

	var status models.JobStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil, fmt.Errorf("status unmarshal: %w", err)
	}
	return &status, nil
}
