package domain

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when the latest-reading cache is empty, the
// expected state before the first successful ingest.
var ErrNoData = errors.New("no data received yet")

// ErrStoreUnconfigured is returned by store operations when the service
// started without database credentials.
var ErrStoreUnconfigured = errors.New("durable store not configured")

// ValidationError reports the first field that failed schema validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}
