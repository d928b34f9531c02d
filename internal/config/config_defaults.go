package config

import (
	"time"

	"github.com/MKhiriev/remote-mirror/models"
)

const (
	BackendDropbox = "dropbox"
	BackendS3      = "s3"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"

	DefaultDropboxAPIURL     = "https://api.dropboxapi.com"
	DefaultDropboxContentURL = "https://content.dropboxapi.com"
	DefaultDropboxTokenURL   = "https://api.dropboxapi.com/oauth2/token"

	DefaultRequestTimeout = 60 * time.Second
	DefaultMaxRetries     = 5
	DefaultLogLevel       = "info"
	DefaultS3Region       = "us-east-1"
)

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Remote.Backend == "" {
		cfg.Remote.Backend = BackendDropbox
	}
	if cfg.Remote.Folder == "" {
		cfg.Remote.Folder = "/"
	}

	if cfg.Dropbox.APIURL == "" {
		cfg.Dropbox.APIURL = DefaultDropboxAPIURL
	}
	if cfg.Dropbox.ContentURL == "" {
		cfg.Dropbox.ContentURL = DefaultDropboxContentURL
	}
	if cfg.Dropbox.TokenURL == "" {
		cfg.Dropbox.TokenURL = DefaultDropboxTokenURL
	}
	if cfg.Dropbox.RequestTimeout == 0 {
		cfg.Dropbox.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Dropbox.MaxRetries == nil {
		retries := DefaultMaxRetries
		cfg.Dropbox.MaxRetries = &retries
	}

	if cfg.S3.Region == "" {
		cfg.S3.Region = DefaultS3Region
	}
	if cfg.S3.RequestTimeout == 0 {
		cfg.S3.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Sync.Policy == "" {
		// S3 exposes no content hash compatible with ours.
		if cfg.Remote.Backend == BackendS3 {
			cfg.Sync.Policy = string(models.PolicyModTime)
		} else {
			cfg.Sync.Policy = string(models.PolicyContentHash)
		}
	}
	if cfg.Sync.Traversal == "" {
		cfg.Sync.Traversal = string(models.TraversalDepthFirst)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = LogFormatJSON
	}
}
