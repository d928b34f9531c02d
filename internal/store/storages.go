package store

import (
	"fmt"

	"github.com/MKhiriev/remote-mirror/internal/config"
)

// Storages groups the local persistence used by a sync run.
type Storages struct {
	Mirror Mirror
}

// NewStorages builds the mirror for cfg.Directory.
func NewStorages(cfg config.Local) (*Storages, error) {
	mirror, err := NewMirror(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("error creating mirror: %w", err)
	}

	return &Storages{Mirror: mirror}, nil
}
