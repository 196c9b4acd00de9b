package core

import (
	"context"
	"time"

	"carbon-backend/app/src/domain"
	"carbon-backend/app/src/infra"
)

// Ingestor coordinates one inbound payload through validation, the
// fast-path cache update and the durable insert. Store failures do not
// roll back the cache: the caller is told the value was accepted in
// memory but not made durable.
type Ingestor struct {
	cache  domain.LatestCache
	store  domain.ReadingWriter
	logger *infra.Logger
	now    func() time.Time
}

// NewIngestor constructs the ingest coordinator.
func NewIngestor(cache domain.LatestCache, store domain.ReadingWriter, logger *infra.Logger) *Ingestor {
	return &Ingestor{cache: cache, store: store, logger: logger, now: time.Now}
}

// Ingest validates raw and, on success, publishes the measurement to the
// cache before attempting the durable insert. The cache update has
// completed by the time the store call is issued.
func (i *Ingestor) Ingest(ctx context.Context, raw domain.RawPayload) domain.IngestOutcome {
	m, err := Validate(raw)
	if err != nil {
		infra.IngestRejectedTotal.Inc()
		return domain.IngestOutcome{Status: domain.IngestRejected, Err: err}
	}

	m.ReceivedAt = i.now().UTC()
	i.cache.Set(m)

	id, err := i.store.Insert(ctx, m)
	if err != nil {
		infra.IngestPartialTotal.Inc()
		i.logger.Errorf(ctx, "durable insert failed for device %s: %v", m.DeviceID, err)
		return domain.IngestOutcome{Status: domain.IngestPartial, Measurement: m, Err: err}
	}

	infra.IngestStoredTotal.Inc()
	i.logger.Printf(ctx, "measurement stored: device=%s co2_ppm=%.1f id=%d", m.DeviceID, m.CO2PPM, id)
	return domain.IngestOutcome{Status: domain.IngestStored, Measurement: m, RecordID: id}
}
