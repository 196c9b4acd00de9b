package core

import (
	"context"
	"fmt"

	"carbon-backend/app/src/domain"
	"carbon-backend/app/src/infra"
)

// ReadingsView serves the enriched recent-readings projection. Reads are
// all-or-nothing: a store failure surfaces as an error with no partial
// data.
type ReadingsView struct {
	store     domain.ReadingReader
	projector *Projector
}

// NewReadingsView constructs the read-side service.
func NewReadingsView(store domain.ReadingReader, projector *Projector) *ReadingsView {
	return &ReadingsView{store: store, projector: projector}
}

// Recent returns up to limit enriched readings, newest first.
func (v *ReadingsView) Recent(ctx context.Context, limit int) ([]domain.EnrichedReading, error) {
	records, err := v.store.QueryRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent readings: %w", err)
	}
	infra.ReadingsServedTotal.Add(float64(len(records)))
	return v.projector.Project(records), nil
}
