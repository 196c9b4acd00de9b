package constants

import "github.com/google/uuid"

// NewRequestID returns a fresh correlation ID for one inbound request.
func NewRequestID() string {
	return uuid.NewString()
}
