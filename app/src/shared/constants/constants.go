package constants

import "time"

const (
	// TimeFormat defines the canonical timestamp format used across transports.
	TimeFormat = time.RFC3339Nano

	// DefaultReadingsLimit bounds the recent-readings query when the
	// client supplies no limit.
	DefaultReadingsLimit = 500

	// MaxReadingsLimit is the hard cap on a client-supplied limit.
	MaxReadingsLimit = 1000
)
