package core

import "carbon-backend/app/src/domain"

// Projector joins stored readings with the static device metadata table.
//
// Enrichment runs in drop mode: a reading whose device has no metadata
// entry is omitted from the output, because the consumer cannot place a
// reading without coordinates. Unknown devices are an expected state and
// never an error.
type Projector struct {
	metadata domain.DeviceMetadata
}

// NewProjector constructs a projector over an immutable metadata table.
func NewProjector(metadata domain.DeviceMetadata) *Projector {
	return &Projector{metadata: metadata}
}

// Project enriches records in their input order. The order (newest-first
// from the store) is preserved, never re-sorted.
func (p *Projector) Project(records []domain.StoredReading) []domain.EnrichedReading {
	enriched := make([]domain.EnrichedReading, 0, len(records))
	for _, rec := range records {
		coords, ok := p.metadata[rec.DeviceID]
		if !ok {
			continue
		}
		enriched = append(enriched, domain.EnrichedReading{
			ID:              rec.ID,
			DeviceID:        rec.DeviceID,
			CO2PPM:          rec.CO2PPM,
			EmissionKgPerHr: rec.EmissionKgPerHr,
			ReceivedAt:      rec.ReceivedAt,
			Lat:             coords.Lat,
			Lng:             coords.Lng,
		})
	}
	return enriched
}
