package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-backend/app/src/domain"
)

var testMetadata = domain.DeviceMetadata{
	"Granville St": {Lat: 49.2827, Lng: -123.1187},
	"Main St":      {Lat: 49.2734, Lng: -123.1000},
}

func storedReading(id int64, device string, ppm float64) domain.StoredReading {
	return domain.StoredReading{
		ID:         id,
		DeviceID:   device,
		CO2PPM:     ppm,
		ReceivedAt: time.Date(2026, 8, 31, 10, 0, 0, int(id), time.UTC),
	}
}

func TestProjectEnrichesKnownDevices(t *testing.T) {
	p := NewProjector(testMetadata)

	enriched := p.Project([]domain.StoredReading{storedReading(3, "Granville St", 812)})

	require.Len(t, enriched, 1)
	assert.Equal(t, int64(3), enriched[0].ID)
	assert.Equal(t, "Granville St", enriched[0].DeviceID)
	assert.Equal(t, 812.0, enriched[0].CO2PPM)
	assert.Equal(t, 49.2827, enriched[0].Lat)
	assert.Equal(t, -123.1187, enriched[0].Lng)
}

// Drop mode: readings for devices without metadata are omitted entirely,
// never passed through with null coordinates and never an error.
func TestProjectDropsUnknownDevices(t *testing.T) {
	p := NewProjector(testMetadata)

	enriched := p.Project([]domain.StoredReading{
		storedReading(3, "Granville St", 812),
		storedReading(2, "Unmapped Rd", 500),
		storedReading(1, "Main St", 420),
	})

	require.Len(t, enriched, 2)
	assert.Equal(t, "Granville St", enriched[0].DeviceID)
	assert.Equal(t, "Main St", enriched[1].DeviceID)
}

func TestProjectPreservesInputOrder(t *testing.T) {
	p := NewProjector(testMetadata)

	records := []domain.StoredReading{
		storedReading(5, "Main St", 430),
		storedReading(4, "Granville St", 812),
		storedReading(2, "Main St", 425),
	}

	enriched := p.Project(records)

	require.Len(t, enriched, 3)
	assert.Equal(t, []int64{5, 4, 2}, []int64{enriched[0].ID, enriched[1].ID, enriched[2].ID},
		"newest-first store order must survive projection untouched")
}

func TestProjectEmptyInput(t *testing.T) {
	p := NewProjector(testMetadata)

	assert.Empty(t, p.Project(nil))
	assert.Empty(t, p.Project([]domain.StoredReading{}))
}

func TestProjectCarriesOptionalEmission(t *testing.T) {
	p := NewProjector(testMetadata)
	emission := 3.5
	rec := storedReading(1, "Main St", 500)
	rec.EmissionKgPerHr = &emission

	enriched := p.Project([]domain.StoredReading{rec, storedReading(2, "Granville St", 600)})

	require.Len(t, enriched, 2)
	require.NotNil(t, enriched[0].EmissionKgPerHr)
	assert.Equal(t, 3.5, *enriched[0].EmissionKgPerHr)
	assert.Nil(t, enriched[1].EmissionKgPerHr)
}
