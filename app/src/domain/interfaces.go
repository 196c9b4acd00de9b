package domain

import "context"

// ReadingWriter persists canonical measurements in the durable store.
type ReadingWriter interface {
	Insert(ctx context.Context, m Measurement) (int64, error)
}

// ReadingReader exposes the bounded recency query used by read views.
// Results are ordered newest-first by the store's insertion key.
type ReadingReader interface {
	QueryRecent(ctx context.Context, limit int) ([]StoredReading, error)
}

// ReadingStore aggregates the write and read capabilities of the durable
// store. The store is the system of record for historical data; the
// latest-reading cache is never consulted for it.
type ReadingStore interface {
	ReadingWriter
	ReadingReader
}

// LatestCache holds the most recently accepted measurement. It is a
// volatile fast path, not a source of truth.
type LatestCache interface {
	Set(m Measurement)
	Get() (Measurement, bool)
}

// IngestService orchestrates validation, the cache update and the durable
// insert for inbound payloads.
type IngestService interface {
	Ingest(ctx context.Context, raw RawPayload) IngestOutcome
}

// ReadingsService serves the enriched recent-readings view.
type ReadingsService interface {
	Recent(ctx context.Context, limit int) ([]EnrichedReading, error)
}
