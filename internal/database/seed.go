package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Seed populates the database with initial development data: a single
// demo business to run generations against. No-op if any business exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM businesses").Scan(&count); err != nil {
		return fmt.Errorf("seed check businesses: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	ownerID := uuid.New()
	_, err := db.Exec(`
		INSERT INTO businesses (owner_id, name, slug, generation_status)
		VALUES ($1, $2, $3, 'none')
	`, ownerID, "Demo Plumbing Co", "demo-plumbing-co")
	if err != nil {
		return fmt.Errorf("seed insert business: %w", err)
	}

	slog.Info("database seeded with demo business",
		"name", "Demo Plumbing Co",
		"owner_id", ownerID,
	)

	return nil
}
