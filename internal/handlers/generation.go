// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the thin HTTP glue over the generation
// pipeline: enqueue a job, poll its status. All business logic lives in
// the pipeline and its collaborators.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sitesmith/internal/models"
	"sitesmith/internal/pipeline"
	"sitesmith/internal/store"
	"sitesmith/internal/understanding"
)

// Generation exposes the generation pipeline over HTTP.
type Generation struct {
	orchestrator *pipeline.Orchestrator
	businesses   *store.BusinessStore
}

// NewGeneration creates the generation handler group.
func NewGeneration(orchestrator *pipeline.Orchestrator, businesses *store.BusinessStore) *Generation {
	return &Generation{orchestrator: orchestrator, businesses: businesses}
}

// generateRequest is the enqueue payload. The understanding document is
// kept raw so legacy intake shapes can be migrated before validation.
type generateRequest struct {
	UserID        uuid.UUID       `json:"userId"`
	Understanding json.RawMessage `json:"businessUnderstanding"`
	SourceURL     string          `json:"sourceUrl,omitempty"`
}

// Enqueue handles POST /api/businesses/{id}/generate. It validates the
// profile, starts a job, and answers 202 with the job id.
func (g *Generation) Enqueue(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid business id")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	business, err := g.businesses.FindByID(r.Context(), businessID)
	if err != nil {
		slog.Error("business lookup failed", "business_id", businessID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if business == nil {
		writeError(w, http.StatusNotFound, "business not found")
		return
	}

	bu, err := understanding.Decode(req.Understanding)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid business understanding document")
		return
	}

	jobID, err := g.orchestrator.Enqueue(r.Context(), businessID, req.UserID, bu, req.SourceURL)
	if err != nil {
		var valErr *pipeline.ValidationError
		switch {
		case errors.As(err, &valErr):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "business understanding failed validation",
				"fields": valErr.Fields,
			})
		case errors.Is(err, pipeline.ErrGenerationInFlight):
			writeError(w, http.StatusConflict, "a generation job for this business is already running")
		default:
			slog.Error("enqueue failed", "business_id", businessID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"jobId":  jobID,
		"status": models.StepQueued,
	})
}

// Status handles GET /api/jobs/{jobID}/status.
func (g *Generation) Status(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	status, err := g.orchestrator.Status(r.Context(), jobID)
	if errors.Is(err, pipeline.ErrJobNotFound) {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		slog.Error("status lookup failed", "job_id", jobID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Website handles GET /api/businesses/{id}/website: the currently
// published config, if any.
func (g *Generation) Website(w http.ResponseWriter, r *http.Request) {
	businessID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid business id")
		return
	}

	business, err := g.businesses.FindByID(r.Context(), businessID)
	if err != nil {
		slog.Error("business lookup failed", "business_id", businessID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if business == nil {
		writeError(w, http.StatusNotFound, "business not found")
		return
	}
	if !business.HasPublishedSite() {
		writeError(w, http.StatusNotFound, "no website generated yet")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"templateId":    business.TemplateID,
		"websiteConfig": business.WebsiteConfig,
		"imageAssets":   business.ImageAssets,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
