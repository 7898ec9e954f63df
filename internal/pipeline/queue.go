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

	"github.com/redis/go-redis/v9"

	"sitesmith/internal/models"
)

const (
	queueKey = "sitesmith:generation:queue"

	// dequeueWait bounds each blocking pop so workers notice shutdown.
	dequeueWait = time.Second
)

// JobQueue hands generation jobs from the API boundary to the workers.
// Dequeue returns (nil, nil) when no job arrived within the wait window.
type JobQueue interface {
	Enqueue(ctx context.Context, job *models.GenerationJob) error
	Dequeue(ctx context.Context) (*models.GenerationJob, error)
}

// RedisQueue is a JobQueue on a Redis list with JSON payloads. Jobs
// survive process restarts; a popped job is owned by exactly one worker.
type RedisQueue struct {
	client *redis.Client
}

// NewRedisQueue creates a queue on the given client.
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

// Enqueue pushes the job onto the left side of the list.
func (q *RedisQueue) Enqueue(ctx context.Context, job *models.GenerationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("queue marshal job: %w", err)
	}
	if err := q.client.LPush(ctx, queueKey, payload).Err(); err != nil {
		return fmt.Errorf("queue push: %w", err)
	}
	return nil
}

// Dequeue blocks up to dequeueWait for the next job from the right side.
func (q *RedisQueue) Dequeue(ctx context.Context) (*models.GenerationJob, error) {
	res, err := q.client.BRPop(ctx, dequeueWait, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // empty queue is a normal state
	}
	if err != nil {
		return nil, fmt.Errorf("queue pop: %w", err)
	}

	// BRPop returns [key, value].
	var job models.GenerationJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, fmt.Errorf("queue unmarshal job: %w", err)
	}
	return &job, nil
}
