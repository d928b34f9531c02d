package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/remote-mirror/internal/config"
	"github.com/MKhiriev/remote-mirror/internal/logger"
)

// NewRemoteAdapter builds the adapter selected by cfg.Remote.Backend.
func NewRemoteAdapter(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (RemoteAdapter, error) {
	switch cfg.Remote.Backend {
	case config.BackendDropbox:
		return NewDropboxAdapter(cfg.Dropbox, log)
	case config.BackendS3:
		return NewS3Adapter(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Remote.Backend)
	}
}
