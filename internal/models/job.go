// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationStep names one stage of the website-generation pipeline.
// Steps execute in a fixed order; each maps to a coarse progress value.
type GenerationStep string

const (
	StepQueued           GenerationStep = "queued"
	StepScraping         GenerationStep = "scraping"
	StepAnalyzing        GenerationStep = "analyzing"
	StepSelectingTmpl    GenerationStep = "selecting_template"
	StepGeneratingConfig GenerationStep = "generating_config"
	StepEnrichingImages  GenerationStep = "enriching_images"
	StepCompleted        GenerationStep = "completed"
	StepFailed           GenerationStep = "failed"
)

// stepProgress maps each step to the progress percentage reported while
// that step runs. Progress is coarse: updated once per stage.
var stepProgress = map[GenerationStep]int{
	StepQueued:           0,
	StepScraping:         10,
	StepAnalyzing:        30,
	StepSelectingTmpl:    50,
	StepGeneratingConfig: 70,
	StepEnrichingImages:  90,
	StepCompleted:        100,
	StepFailed:           0,
}

// Progress returns the percentage associated with the step.
func (s GenerationStep) Progress() int {
	return stepProgress[s]
}

// Terminal reports whether the step is a final state.
func (s GenerationStep) Terminal() bool {
	return s == StepCompleted || s == StepFailed
}

// GenerationJob is one queued run of the pipeline for one business.
type GenerationJob struct {
	ID            uuid.UUID             `json:"id"`
	BusinessID    uuid.UUID             `json:"businessId"`
	UserID        uuid.UUID             `json:"userId"`
	Understanding BusinessUnderstanding `json:"businessUnderstanding"`
	SourceURL     string                `json:"sourceUrl,omitempty"`
	EnqueuedAt    time.Time             `json:"enqueuedAt"`
}

// JobResult is the terminal outcome of a job, success or failure.
type JobResult struct {
	Success    bool      `json:"success"`
	BusinessID uuid.UUID `json:"businessId"`
	TemplateID string    `json:"templateId,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// JobStatus is the externally visible snapshot of a job: the current or
// terminal step, its progress, and the result once terminal.
type JobStatus struct {
	Status   GenerationStep `json:"status"`
	Progress int            `json:"progress"`
	Step     string         `json:"step,omitempty"`
	Result   *JobResult     `json:"result,omitempty"`
}
