package utils

import "github.com/google/uuid"

// NewRunID returns a time-ordered identifier for a sync run.
// UUIDv7 keeps run IDs sortable in log storage; on the unlikely failure to
// read the clock source it falls back to a random v4 UUID.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
