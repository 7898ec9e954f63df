// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

func TestMemoryQueueRoundTrip(t *testing.T) {
	q := NewMemoryQueue(4)
	job := &models.GenerationJob{ID: uuid.New(), BusinessID: uuid.New()}

	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	got, err := q.Dequeue(context.Background())
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if got == nil || got.ID != job.ID {
		t.Errorf("got %+v, want job %s", got, job.ID)
	}
}

func TestMemoryQueueEmptyDequeue(t *testing.T) {
	q := NewMemoryQueue(1)

	// An empty queue is a normal state, not an error.
	got, err := q.Dequeue(context.Background())
	if err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v from an empty queue", got)
	}
}

func TestMemoryStatusStore(t *testing.T) {
	s := NewMemoryStatusStore()
	jobID := uuid.New()

	if _, err := s.Get(context.Background(), jobID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}

	want := models.JobStatus{Status: models.StepScraping, Progress: 10, Step: "scraping"}
	if err := s.Set(context.Background(), jobID, want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(context.Background(), jobID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != want.Status || got.Progress != want.Progress {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMemoryLock(t *testing.T) {
	l := NewMemoryLock()
	businessID := uuid.New()

	ok, err := l.Acquire(context.Background(), businessID)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}

	ok, err = l.Acquire(context.Background(), businessID)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if ok {
		t.Error("second acquire must fail while the lock is held")
	}

	if err := l.Release(context.Background(), businessID); err != nil {
		t.Fatalf("Release: %v", err)
	}
	ok, err = l.Acquire(context.Background(), businessID)
	if err != nil || !ok {
		t.Errorf("acquire after release: ok=%v err=%v", ok, err)
	}
}
