// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

// In-memory implementations of the queue, status store, and lock. They
// back single-process deployments and the test suite; production uses the
// Redis variants so jobs survive restarts.

// MemoryQueue is a channel-backed JobQueue.
type MemoryQueue struct {
	jobs chan *models.GenerationJob
}

// NewMemoryQueue creates a queue with a fixed buffer.
func NewMemoryQueue(size int) *MemoryQueue {
	if size <= 0 {
		size = 128
	}
	return &MemoryQueue{jobs: make(chan *models.GenerationJob, size)}
}

// Enqueue adds a job, failing fast when the buffer is full.
func (q *MemoryQueue) Enqueue(ctx context.Context, job *models.GenerationJob) error {
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dequeue waits up to the standard window for the next job.
func (q *MemoryQueue) Dequeue(ctx context.Context) (*models.GenerationJob, error) {
	select {
	case job := <-q.jobs:
		return job, nil
	case <-time.After(dequeueWait):
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// MemoryStatusStore keeps job statuses in a map.
type MemoryStatusStore struct {
	mu       sync.RWMutex
	statuses map[uuid.UUID]models.JobStatus
}

// NewMemoryStatusStore creates an empty status store.
func NewMemoryStatusStore() *MemoryStatusStore {
	return &MemoryStatusStore{statuses: make(map[uuid.UUID]models.JobStatus)}
}

// Set overwrites the status snapshot for a job.
func (s *MemoryStatusStore) Set(_ context.Context, jobID uuid.UUID, status models.JobStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[jobID] = status
	return nil
}

// Get returns the latest snapshot, or ErrJobNotFound.
func (s *MemoryStatusStore) Get(_ context.Context, jobID uuid.UUID) (*models.JobStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.statuses[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	return &status, nil
}

// MemoryLock is a map-backed BusinessLocker.
type MemoryLock struct {
	mu    sync.Mutex
	taken map[uuid.UUID]bool
}

// NewMemoryLock creates an empty lock manager.
func NewMemoryLock() *MemoryLock {
	return &MemoryLock{taken: make(map[uuid.UUID]bool)}
}

// Acquire attempts to take the lock for a business.
func (l *MemoryLock) Acquire(_ context.Context, businessID uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.taken[businessID] {
		return false, nil
	}
	l.taken[businessID] = true
	return true, nil
}

// Release frees the lock.
func (l *MemoryLock) Release(_ context.Context, businessID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.taken, businessID)
	return nil
}
