package domain

import "time"

// RawPayload is the untyped request body exactly as received over the
// wire. It only exists while validation runs.
type RawPayload map[string]any

// Measurement is the canonical record produced by schema validation.
// ReceivedAt is assigned by the server; client-supplied timestamps are
// untrusted and never merged in.
type Measurement struct {
	DeviceID        string    `json:"device_id"`
	CO2PPM          float64   `json:"co2_ppm"`
	EmissionKgPerHr *float64  `json:"co2_emission_kg_per_hr,omitempty"`
	AssetType       string    `json:"asset_type,omitempty"`
	AssetName       string    `json:"asset_name,omitempty"`
	ReceivedAt      time.Time `json:"received_at"`
}

// StoredReading is a measurement as persisted by the durable store. The
// store-assigned ID is the recency key for historical queries.
type StoredReading struct {
	ID              int64
	DeviceID        string
	CO2PPM          float64
	EmissionKgPerHr *float64
	AssetType       string
	AssetName       string
	ReceivedAt      time.Time
}

// Coordinates locates a fixed or mobile asset.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// DeviceMetadata maps a device identifier to its coordinates. It is
// loaded once at startup and treated as immutable afterwards; a missing
// entry means the device is new or unmapped, not an error.
type DeviceMetadata map[string]Coordinates

// EnrichedReading is the externally visible projection of a stored
// reading joined with its device metadata. It is built per request and
// never persisted.
type EnrichedReading struct {
	ID              int64     `json:"id"`
	DeviceID        string    `json:"device_id"`
	CO2PPM          float64   `json:"co2_ppm"`
	EmissionKgPerHr *float64  `json:"co2_emission_kg_per_hr,omitempty"`
	ReceivedAt      time.Time `json:"received_at"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
}

// IngestStatus classifies the result of one ingest attempt.
type IngestStatus int

const (
	// IngestRejected means validation failed; nothing was cached or stored.
	IngestRejected IngestStatus = iota
	// IngestPartial means the cache holds the measurement but the durable
	// insert failed.
	IngestPartial
	// IngestStored means the measurement is cached and durably persisted.
	IngestStored
)

// IngestOutcome reports what happened to one inbound payload. RecordID is
// only meaningful when Status is IngestStored; Err carries the validation
// or store error for the other two states.
type IngestOutcome struct {
	Status      IngestStatus
	Measurement Measurement
	RecordID    int64
	Err         error
}
