// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pipeline runs website-generation jobs: a bounded worker pool
// pulls jobs from a queue and drives each one through a fixed stage
// ladder — scrape, analyze, select template, generate config, enrich
// images — reporting coarse progress after every stage and writing the
// business row exactly once at the end (success or failure).
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitesmith/internal/fetch"
	"sitesmith/internal/images"
	"sitesmith/internal/metrics"
	"sitesmith/internal/models"
	"sitesmith/internal/scrape"
	"sitesmith/internal/sitegen"
	"sitesmith/internal/templates"
	"sitesmith/internal/understanding"
)

// ErrGenerationInFlight is returned by Enqueue when a generation job for
// the same business is already queued or running.
var ErrGenerationInFlight = errors.New("pipeline: a generation job for this business is already in flight")

// ValidationError carries every schema violation found in the submitted
// business profile. It is returned from Enqueue, never thrown past it.
type ValidationError struct {
	Fields []understanding.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid business understanding: " + strings.Join(msgs, "; ")
}

// PageFetcher is the fetch capability the scraping stage consumes.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// BusinessPersister is the persistence contract the pipeline writes
// through. Implementations must apply each call as one atomic update on
// the business row; the analysis document is merged, not replaced.
type BusinessPersister interface {
	SaveGenerationResult(ctx context.Context, businessID uuid.UUID, templateID string,
		cfg *models.WebsiteConfig, assets *models.ImageAssets, analysis map[string]any) error
	SaveGenerationFailure(ctx context.Context, businessID uuid.UUID, message string) error
}

// Config tunes the orchestrator. Zero values fall back to defaults:
// 2 workers, a 2-minute per-job deadline, and the default retry policy.
type Config struct {
	Workers    int
	JobTimeout time.Duration
	Retry      RetryPolicy
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = 2 * time.Minute
	}
	if c.Retry.MaxAttempts <= 0 {
		c.Retry = DefaultRetryPolicy()
	}
	return c
}

// Orchestrator owns the generation worker pool. It is constructed
// explicitly and injected where needed; there is no package-level
// singleton.
type Orchestrator struct {
	queue      JobQueue
	status     StatusStore
	locks      BusinessLocker
	businesses BusinessPersister
	fetcher    PageFetcher
	enricher   *images.Engine
	generator  *sitegen.Generator
	cfg        Config
	logger     *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New wires an orchestrator from its collaborators.
func New(
	queue JobQueue,
	status StatusStore,
	locks BusinessLocker,
	businesses BusinessPersister,
	fetcher PageFetcher,
	enricher *images.Engine,
	generator *sitegen.Generator,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		queue:      queue,
		status:     status,
		locks:      locks,
		businesses: businesses,
		fetcher:    fetcher,
		enricher:   enricher,
		generator:  generator,
		cfg:        cfg.withDefaults(),
		logger:     slog.Default(),
	}
}

// Start launches the worker pool. Call Stop to drain it.
func (o *Orchestrator) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel

	for i := 0; i < o.cfg.Workers; i++ {
		o.wg.Add(1)
		go o.worker(ctx, i)
	}
	o.logger.Info("generation workers started", "workers", o.cfg.Workers)
}

// Stop signals the workers and waits for in-flight jobs to finish, up to
// the context deadline.
func (o *Orchestrator) Stop(ctx context.Context) error {
	if o.cancel != nil {
		o.cancel()
	}

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		o.logger.Info("generation workers stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop workers: %w", ctx.Err())
	}
}

// Enqueue validates the profile, takes the per-business lock, and queues
// a job. Returns the job id for status polling. A second request for a
// business with a job already in flight fails with ErrGenerationInFlight.
func (o *Orchestrator) Enqueue(ctx context.Context, businessID, userID uuid.UUID, bu models.BusinessUnderstanding, sourceURL string) (uuid.UUID, error) {
	if fieldErrs := understanding.Validate(bu); len(fieldErrs) > 0 {
		return uuid.Nil, &ValidationError{Fields: fieldErrs}
	}

	ok, err := o.locks.Acquire(ctx, businessID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("enqueue: %w", err)
	}
	if !ok {
		metrics.EnqueueRejections.Inc()
		return uuid.Nil, ErrGenerationInFlight
	}

	job := &models.GenerationJob{
		ID:            uuid.New(),
		BusinessID:    businessID,
		UserID:        userID,
		Understanding: bu,
		SourceURL:     sourceURL,
		EnqueuedAt:    time.Now(),
	}

	if err := o.status.Set(ctx, job.ID, models.JobStatus{
		Status:   models.StepQueued,
		Progress: models.StepQueued.Progress(),
	}); err != nil {
		o.logger.Warn("failed to record queued status", "job_id", job.ID, "error", err)
	}

	if err := o.queue.Enqueue(ctx, job); err != nil {
		// The job never made it in; free the business again.
		if rerr := o.locks.Release(ctx, businessID); rerr != nil {
			o.logger.Warn("failed to release lock after enqueue error", "business_id", businessID, "error", rerr)
		}
		return uuid.Nil, fmt.Errorf("enqueue: %w", err)
	}

	o.logger.Info("generation job enqueued",
		"job_id", job.ID, "business_id", businessID, "source_url", sourceURL != "")
	return job.ID, nil
}

// Status returns the current snapshot for a job.
func (o *Orchestrator) Status(ctx context.Context, jobID uuid.UUID) (*models.JobStatus, error) {
	return o.status.Get(ctx, jobID)
}

// dequeueErrorBackoff keeps a worker from spinning hot when the queue
// backend is unreachable.
const dequeueErrorBackoff = time.Second

func (o *Orchestrator) worker(ctx context.Context, id int) {
	defer o.wg.Done()

	logger := o.logger.With("worker", id)
	for {
		job, err := o.queue.Dequeue(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			logger.Error("dequeue failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(dequeueErrorBackoff):
			}
			continue
		}
		if job == nil {
			continue
		}
		o.handle(ctx, job)
	}
}

// handle runs one job under the retry policy and the per-job deadline,
// then releases the business lock whatever the outcome.
func (o *Orchestrator) handle(ctx context.Context, job *models.GenerationJob) {
	// Cleanup must run even when ctx was canceled mid-job.
	cleanupCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := o.locks.Release(cleanupCtx, job.BusinessID); err != nil {
			o.logger.Warn("failed to release business lock", "business_id", job.BusinessID, "error", err)
		}
	}()

	jobCtx, cancel := context.WithTimeout(ctx, o.cfg.JobTimeout)
	defer cancel()

	err := o.cfg.Retry.Run(jobCtx, func(ctx context.Context) error {
		return o.process(ctx, job)
	})
	if err != nil {
		o.fail(cleanupCtx, job, err)
	}
}

// process executes the stage ladder for one attempt. Transient failures
// come back wrapped for the retry policy; a missing template is fatal and
// returns bare.
func (o *Orchestrator) process(ctx context.Context, job *models.GenerationJob) error {
	logger := o.logger.With("job_id", job.ID, "business_id", job.BusinessID)

	// Scraping. Failures downgrade to an empty scrape; the job goes on.
	o.setStep(ctx, job.ID, models.StepScraping)
	var scraped *models.ScrapedData
	if job.SourceURL != "" {
		scraped = o.scrapeSource(ctx, job.SourceURL, logger)
	}

	// Analysis: fill profile gaps from the scrape. Fields the intake
	// validated are never overwritten.
	o.setStep(ctx, job.ID, models.StepAnalyzing)
	bu := understanding.Coerce(job.Understanding, scraped)

	// Template selection.
	o.setStep(ctx, job.ID, models.StepSelectingTmpl)
	hasImages := scraped.HasImages() || (bu.ImageAssets != nil && bu.ImageAssets.Total() > 0)
	selection := templates.Select(templates.Criteria{
		Category:  bu.Category,
		BrandTone: string(bu.BrandTone),
		Services:  bu.Services,
		HasImages: hasImages,
	})
	logger.Info("template selected",
		"template", selection.Template.ID,
		"confidence", selection.Confidence,
		"reason", selection.Reason)

	// Config generation, images deferred to the enrichment stage.
	o.setStep(ctx, job.ID, models.StepGeneratingConfig)
	cfg, err := o.generator.Generate(bu, selection.Template.ID, scraped)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) {
			return err // fatal: retrying cannot fix a bad template id
		}
		return Transient(fmt.Errorf("generate config: %w", err))
	}

	// Image enrichment, then patch the config with the final assets.
	o.setStep(ctx, job.ID, models.StepEnrichingImages)
	var scrapedImages []string
	if scraped != nil {
		scrapedImages = scraped.Images
	}
	enrichStart := time.Now()
	enriched := o.enricher.Enrich(ctx, scrapedImages, bu.Category, bu.SEOKeywords, bu.Name)
	metrics.StageDuration.WithLabelValues(string(models.StepEnrichingImages)).Observe(time.Since(enrichStart).Seconds())
	patchImages(cfg, enriched.Assets)

	// Persist the whole result as one write on the business row.
	analysis := map[string]any{
		"scrape": scraped,
		"templateSelection": map[string]any{
			"templateId": selection.Template.ID,
			"confidence": selection.Confidence,
			"reason":     selection.Reason,
		},
		"imageSource": enriched.Source,
		"imageCount":  enriched.Count,
	}
	if err := o.businesses.SaveGenerationResult(ctx, job.BusinessID, cfg.TemplateID, cfg, &enriched.Assets, analysis); err != nil {
		return Transient(fmt.Errorf("persist result: %w", err))
	}

	if err := o.status.Set(ctx, job.ID, models.JobStatus{
		Status:   models.StepCompleted,
		Progress: models.StepCompleted.Progress(),
		Result: &models.JobResult{
			Success:    true,
			BusinessID: job.BusinessID,
			TemplateID: cfg.TemplateID,
		},
	}); err != nil {
		logger.Warn("failed to record completed status", "error", err)
	}

	metrics.JobsTotal.WithLabelValues("completed").Inc()
	logger.Info("generation completed", "template", cfg.TemplateID, "image_source", enriched.Source)
	return nil
}

// scrapeSource fetches and extracts the source page. All failures are
// recoverable here: the caller receives a record carrying the error kind
// instead of page content.
func (o *Orchestrator) scrapeSource(ctx context.Context, sourceURL string, logger *slog.Logger) *models.ScrapedData {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues(string(models.StepScraping)).Observe(time.Since(start).Seconds())
	}()

	markup, err := o.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		kind := fetch.KindOf(err)
		metrics.FetchErrors.WithLabelValues(string(kind)).Inc()
		logger.Warn("scrape failed, continuing with empty data", "url", sourceURL, "kind", kind, "error", err)
		return &models.ScrapedData{Error: string(kind)}
	}

	data := scrape.Extract(markup, sourceURL)
	logger.Info("scrape completed",
		"title", data.Title != "",
		"images", len(data.Images),
		"headings", len(data.Headings))
	return &data
}

// fail marks the job and the business record as failed. The business's
// previously published config, if any, stays untouched.
func (o *Orchestrator) fail(ctx context.Context, job *models.GenerationJob, jobErr error) {
	o.logger.Error("generation failed", "job_id", job.ID, "business_id", job.BusinessID, "error", jobErr)

	if err := o.businesses.SaveGenerationFailure(ctx, job.BusinessID, jobErr.Error()); err != nil {
		o.logger.Error("failed to persist job failure", "business_id", job.BusinessID, "error", err)
	}

	if err := o.status.Set(ctx, job.ID, models.JobStatus{
		Status:   models.StepFailed,
		Progress: models.StepFailed.Progress(),
		Step:     jobErr.Error(),
		Result: &models.JobResult{
			Success:    false,
			BusinessID: job.BusinessID,
			Error:      jobErr.Error(),
		},
	}); err != nil {
		o.logger.Warn("failed to record failed status", "job_id", job.ID, "error", err)
	}

	metrics.JobsTotal.WithLabelValues("failed").Inc()
}

// setStep records coarse progress: once per stage, never per operation.
func (o *Orchestrator) setStep(ctx context.Context, jobID uuid.UUID, step models.GenerationStep) {
	err := o.status.Set(ctx, jobID, models.JobStatus{
		Status:   step,
		Progress: step.Progress(),
		Step:     string(step),
	})
	if err != nil {
		o.logger.Warn("failed to record step", "job_id", jobID, "step", step, "error", err)
	}
}

// patchImages applies the enriched asset set onto a generated config.
func patchImages(cfg *models.WebsiteConfig, assets models.ImageAssets) {
	if assets.Hero != "" {
		cfg.Hero.HeroImage = assets.Hero
	}
	if len(assets.Gallery) > 0 {
		cfg.About.Image = assets.Gallery[0]
		for i := range cfg.Services {
			cfg.Services[i].Image = assets.Gallery[i%len(assets.Gallery)]
		}
	}
	if cfg.Gallery != nil {
		cfg.Gallery.Images = assets.Gallery
	}
}
