// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the database access layer. Each store wraps a
// *sql.DB and exposes typed operations for one entity.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"sitesmith/internal/models"
	"sitesmith/internal/slug"
)

// BusinessStore handles all business-related database operations,
// including the single-write persistence the generation pipeline relies
// on: one atomic row update per finished job.
type BusinessStore struct {
	db *sql.DB
}

// NewBusinessStore creates a new BusinessStore with the given database connection.
func NewBusinessStore(db *sql.DB) *BusinessStore {
	return &BusinessStore{db: db}
}

// Create inserts a new business owned by ownerID. The slug derives from
// the name.
func (s *BusinessStore) Create(ctx context.Context, ownerID uuid.UUID, name string) (*models.Business, error) {
	b := &models.Business{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO businesses (owner_id, name, slug, generation_status)
		VALUES ($1, $2, $3, 'none')
		RETURNING id, owner_id, name, slug, generation_status, created_at, updated_at
	`, ownerID, name, slug.Generate(name)).Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Slug, &b.GenerationStatus,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}
	return b, nil
}

// FindByID retrieves a business by its UUID. Returns nil if not found.
func (s *BusinessStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	b := &models.Business{}
	var (
		websiteConfig []byte
		imageAssets   []byte
		analysis      []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, slug, template_id, website_config,
		       image_assets, generation_status, generation_step, analysis,
		       created_at, updated_at
		FROM businesses WHERE id = $1
	`, id).Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Slug, &b.TemplateID, &websiteConfig,
		&imageAssets, &b.GenerationStatus, &b.GenerationStep, &analysis,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find business by id: %w", err)
	}

	if len(websiteConfig) > 0 {
		b.WebsiteConfig = &models.WebsiteConfig{}
		if err := json.Unmarshal(websiteConfig, b.WebsiteConfig); err != nil {
			return nil, fmt.Errorf("decode website config: %w", err)
		}
	}
	if len(imageAssets) > 0 {
		b.ImageAssets = &models.ImageAssets{}
		if err := json.Unmarshal(imageAssets, b.ImageAssets); err != nil {
			return nil, fmt.Errorf("decode image assets: %w", err)
		}
	}
	b.Analysis = analysis

	return b, nil
}

// SaveGenerationResult persists a successful generation run as one atomic
// update: template, config, assets, status, and the analysis merge all
// land together. The previous config is only ever replaced here.
func (s *BusinessStore) SaveGenerationResult(ctx context.Context, businessID uuid.UUID, templateID string,
	cfg *models.WebsiteConfig, assets *models.ImageAssets, analysis map[string]any) error {

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode website config: %w", err)
	}
	assetsJSON, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("encode image assets: %w", err)
	}
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE businesses
		SET template_id = $2,
		    website_config = $3,
		    image_assets = $4,
		    generation_status = 'completed',
		    generation_step = NULL,
		    analysis = COALESCE(analysis, '{}'::jsonb) || $5::jsonb,
		    updated_at = now()
		WHERE id = $1
	`, businessID, templateID, cfgJSON, assetsJSON, analysisJSON)
	if err != nil {
		return fmt.Errorf("save generation result: %w", err)
	}
	return ensureUpdated(res, businessID)
}

// SaveGenerationFailure marks the last run failed, keeping any previously
// published config untouched. The step column carries the error message
// the status endpoint surfaces.
func (s *BusinessStore) SaveGenerationFailure(ctx context.Context, businessID uuid.UUID, message string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE businesses
		SET generation_status = 'failed',
		    generation_step = $2,
		    updated_at = now()
		WHERE id = $1
	`, businessID, message)
	if err != nil {
		return fmt.Errorf("save generation failure: %w", err)
	}
	return ensureUpdated(res, businessID)
}

func ensureUpdated(res sql.Result, businessID uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("business %s not found", businessID)
	}
	return nil
}
