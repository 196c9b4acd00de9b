package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"carbon-backend/app/src/domain"
)

const (
	insertReadingSQL = `
INSERT INTO public.readings (device_id, co2_ppm, co2_emission_kg_per_hr, asset_type, asset_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	selectRecentSQL = `
SELECT id, device_id, co2_ppm, co2_emission_kg_per_hr, asset_type, asset_name, received_at
FROM public.readings
ORDER BY id DESC
LIMIT $1
`
)

// Store is the durable store adapter backed by Postgres. A nil db means
// the process started without credentials; every call then fails with
// domain.ErrStoreUnconfigured so ingestion can still report partial
// success.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle. db may be nil.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert persists one canonical measurement and returns the store-assigned
// serial id, the recency key for historical queries. received_at is
// defaulted by the database.
func (s *Store) Insert(ctx context.Context, m domain.Measurement) (int64, error) {
	if s.db == nil {
		return 0, domain.ErrStoreUnconfigured
	}

	var id int64
	err := s.db.QueryRowContext(ctx, insertReadingSQL,
		m.DeviceID,
		m.CO2PPM,
		nullFloat(m.EmissionKgPerHr),
		nullString(m.AssetType),
		nullString(m.AssetName),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert reading: %w", err)
	}
	return id, nil
}

// QueryRecent returns up to limit readings ordered newest-first by id.
// Client-supplied timestamps never participate in the ordering.
func (s *Store) QueryRecent(ctx context.Context, limit int) ([]domain.StoredReading, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnconfigured
	}
	if limit <= 0 {
		return []domain.StoredReading{}, nil
	}

	rows, err := s.db.QueryContext(ctx, selectRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent readings: %w", err)
	}
	defer rows.Close()

	readings := make([]domain.StoredReading, 0, limit)
	for rows.Next() {
		var (
			rec         domain.StoredReading
			ppmRaw      any
			emissionRaw any
			assetType   sql.NullString
			assetName   sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.DeviceID, &ppmRaw, &emissionRaw, &assetType, &assetName, &rec.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}

		// Numeric columns come back type-erased (lib/pq hands NUMERIC over
		// as bytes). co2_ppm is required and must not be coerced away;
		// the emission column fails soft to nil because it is optional.
		ppm, ok := coerceFloat(ppmRaw)
		if !ok {
			return nil, fmt.Errorf("scan reading %d: co2_ppm has non-numeric value %v", rec.ID, ppmRaw)
		}
		rec.CO2PPM = ppm
		if emission, ok := coerceFloat(emissionRaw); ok {
			rec.EmissionKgPerHr = &emission
		}
		rec.AssetType = assetType.String
		rec.AssetName = assetName.String

		readings = append(readings, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}
	return readings, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case []byte:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
