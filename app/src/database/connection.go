package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"carbon-backend/app/src/infra"
)

const (
	pingAttempts = 5
	pingInterval = 2 * time.Second
)

const createReadingsTableSQL = `
CREATE TABLE IF NOT EXISTS public.readings (
    id                     BIGSERIAL PRIMARY KEY,
    device_id              TEXT NOT NULL,
    co2_ppm                DOUBLE PRECISION NOT NULL,
    co2_emission_kg_per_hr DOUBLE PRECISION,
    asset_type             TEXT,
    asset_name             TEXT,
    received_at            TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

// Setup opens the durable store for the given DSN. An empty DSN is not an
// error: the service starts anyway and store calls fail at request time.
// Connectivity problems during the readiness wait are logged, not fatal.
func Setup(ctx context.Context, dsn string, logger *infra.Logger) (*Store, func(), error) {
	if dsn == "" {
		logger.Println(ctx, "no database DSN configured; running with unconfigured store")
		store := NewStore(nil)
		return store, func() {}, nil
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if err := waitForDatabase(ctx, db); err != nil {
		logger.Printf(ctx, "database connectivity check failed: %v", err)
	} else {
		logger.Println(ctx, "database connectivity check succeeded")
		if err := ensureSchema(ctx, db); err != nil {
			logger.Printf(ctx, "schema bootstrap failed: %v", err)
		}
	}

	store := NewStore(db)
	cleanup := func() {
		_ = store.Close()
	}
	return store, cleanup, nil
}

// Migrate applies the readings schema to the database at dsn, waiting for
// connectivity first. Used by the standalone migrate command.
func Migrate(ctx context.Context, dsn string, logger *infra.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := waitForDatabase(ctx, db); err != nil {
		return err
	}
	logger.Println(ctx, "database connectivity check succeeded")
	return ensureSchema(ctx, db)
}

func waitForDatabase(ctx context.Context, db *sql.DB) error {
	var lastErr error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingInterval)
		lastErr = db.PingContext(pingCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingInterval):
		}
	}
	return fmt.Errorf("ping database after %d attempts: %w", pingAttempts, lastErr)
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createReadingsTableSQL); err != nil {
		return fmt.Errorf("create readings table: %w", err)
	}
	return nil
}
