// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus collectors for the generation
// pipeline. Collectors register on the default registry; the router
// serves them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsTotal counts finished generation jobs by outcome
	// ("completed" or "failed").
	JobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitesmith_generation_jobs_total",
		Help: "Total number of finished website generation jobs by outcome.",
	}, []string{"outcome"})

	// StageDuration tracks how long each pipeline stage takes.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sitesmith_generation_stage_duration_seconds",
		Help:    "Duration of individual generation pipeline stages.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	// FetchErrors counts secure-fetcher failures by kind. Fetch failures
	// never fail a job, so this is the only place they stay visible.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sitesmith_fetch_errors_total",
		Help: "Total number of page fetch failures by error kind.",
	}, []string{"kind"})

	// EnqueueRejections counts generation requests rejected because a job
	// for the same business was already in flight.
	EnqueueRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sitesmith_generation_enqueue_rejections_total",
		Help: "Total number of enqueue attempts rejected by the per-business lock.",
	})
)
