package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-backend/app/src/domain"
)

type stubReader struct {
	records []domain.StoredReading
	err     error
	lastLim int
}

func (s *stubReader) QueryRecent(ctx context.Context, limit int) ([]domain.StoredReading, error) {
	s.lastLim = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.records) {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func TestReadingsViewRecent(t *testing.T) {
	reader := &stubReader{records: []domain.StoredReading{
		storedReading(2, "Main St", 430),
		storedReading(1, "Granville St", 812),
	}}
	view := NewReadingsView(reader, NewProjector(testMetadata))

	enriched, err := view.Recent(context.Background(), 500)

	require.NoError(t, err)
	assert.Equal(t, 500, reader.lastLim)
	require.Len(t, enriched, 2)
	assert.Equal(t, int64(2), enriched[0].ID)
}

func TestReadingsViewStoreErrorIsAllOrNothing(t *testing.T) {
	storeErr := errors.New("timeout")
	view := NewReadingsView(&stubReader{err: storeErr}, NewProjector(testMetadata))

	enriched, err := view.Recent(context.Background(), 500)

	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, enriched, "no partial data on read-path failures")
}

// Inserting N readings and projecting a query with limit >= N yields N
// enriched entries whose core fields equal the inserted values.
func TestReadingsViewRoundTrip(t *testing.T) {
	records := []domain.StoredReading{
		storedReading(3, "Granville St", 830),
		storedReading(2, "Main St", 425),
		storedReading(1, "Granville St", 812),
	}
	view := NewReadingsView(&stubReader{records: records}, NewProjector(testMetadata))

	enriched, err := view.Recent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, enriched, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.ID, enriched[i].ID)
		assert.Equal(t, rec.DeviceID, enriched[i].DeviceID)
		assert.Equal(t, rec.CO2PPM, enriched[i].CO2PPM)
		assert.Equal(t, rec.ReceivedAt, enriched[i].ReceivedAt)
	}
}
