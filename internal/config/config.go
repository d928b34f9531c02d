// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/remote-mirror/models"
)

// StructuredConfig is the top-level configuration container for the mirror.
// It aggregates all sub-configurations and is populated by merging values
// from an optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote selects the backend and the folder the walk starts from.
	Remote Remote `envPrefix:"REMOTE_"`

	// Dropbox holds credentials and endpoints of the Dropbox backend.
	Dropbox Dropbox `envPrefix:"DROPBOX_"`

	// S3 holds bucket, region and credentials of the S3 backend.
	S3 S3 `envPrefix:"S3_"`

	// Local holds the local mirror settings.
	Local Local `envPrefix:"LOCAL_"`

	// Sync holds staleness, traversal and scheduling settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Metrics holds the optional Prometheus textfile sink.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and used as the lowest-priority
	// source. Populated via the CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote selects the remote backend.
type Remote struct {
	// Backend is "dropbox" or "s3".
	// Env: REMOTE_BACKEND
	Backend string `env:"BACKEND"`

	// Folder is the remote folder to mirror. Defaults to the root "/".
	// Env: REMOTE_FOLDER
	Folder string `env:"FOLDER"`
}

// Dropbox holds Dropbox API settings.
//
// Either AccessToken or the AppKey/AppSecret/RefreshToken triple must be set;
// the refresh token flow is preferred because access tokens are short-lived.
type Dropbox struct {
	// Env: DROPBOX_APP_KEY
	AppKey string `env:"APP_KEY"`

	// Env: DROPBOX_APP_SECRET
	AppSecret string `env:"APP_SECRET"`

	// Env: DROPBOX_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// AccessToken is a static short-lived token, mostly useful for testing.
	// Env: DROPBOX_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// APIURL is the base URL of RPC endpoints (list_folder and friends).
	// Env: DROPBOX_API_URL
	APIURL string `env:"API_URL"`

	// ContentURL is the base URL of content endpoints (download).
	// Env: DROPBOX_CONTENT_URL
	ContentURL string `env:"CONTENT_URL"`

	// TokenURL is the OAuth2 token endpoint.
	// Env: DROPBOX_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// RequestTimeout bounds a single HTTP request (e.g. "30s").
	// Env: DROPBOX_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries is the retry budget for rate-limited or unavailable calls.
	// Nil means unset and takes DefaultMaxRetries; 0 disables retries.
	// Env: DROPBOX_MAX_RETRIES
	MaxRetries *int `env:"MAX_RETRIES"`
}

// S3 holds settings of an S3 or S3-compatible bucket.
type S3 struct {
	// Env: S3_BUCKET
	Bucket string `env:"BUCKET"`

	// Env: S3_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the service endpoint (MinIO, Ceph, ...).
	// Env: S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// UsePathStyle forces path-style addressing, required by most
	// S3-compatible servers.
	// Env: S3_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`

	// AccessKeyID and SecretAccessKey select static credentials. When empty
	// the default AWS credential chain is used.
	// Env: S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`

	// Env: S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// RequestTimeout bounds a single HTTP request.
	// Env: S3_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Local holds the local mirror settings.
type Local struct {
	// Directory is the root of the local mirror.
	// Env: LOCAL_DIRECTORY
	Directory string `env:"DIRECTORY"`
}

// Sync holds run settings.
type Sync struct {
	// Policy is "hash" (content hash) or "mtime" (modification time + size).
	// Env: SYNC_POLICY
	Policy string `env:"POLICY"`

	// Traversal is "depth" (stack) or "breadth" (queue).
	// Env: SYNC_TRAVERSAL
	Traversal string `env:"TRAVERSAL"`

	// NoModTime disables copying remote modification times to local files.
	// Env: SYNC_NO_MTIME
	NoModTime bool `env:"NO_MTIME"`

	// DryRun logs decisions without writing to the mirror.
	// Env: SYNC_DRY_RUN
	DryRun bool `env:"DRY_RUN"`

	// Interval repeats the sync on a ticker when positive.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Interactive asks before creating a missing local root.
	// Env: SYNC_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "json" or "console". Env: LOG_FORMAT
	Format string `env:"FORMAT"`

	// File appends logs to the given file instead of stdout. Env: LOG_FILE
	File string `env:"FILE"`
}

// Metrics holds the Prometheus textfile sink settings.
type Metrics struct {
	// File is the .prom file written after every run. Env: METRICS_FILE
	File string `env:"FILE"`
}

// SyncRequest maps the resolved configuration onto the parameters of one
// sync run.
func (cfg *StructuredConfig) SyncRequest() models.SyncRequest {
	return models.SyncRequest{
		Folder:          cfg.Remote.Folder,
		Policy:          models.Policy(cfg.Sync.Policy),
		Traversal:       models.Traversal(cfg.Sync.Traversal),
		PreserveModTime: !cfg.Sync.NoModTime,
		DryRun:          cfg.Sync.DryRun,
	}
}

// GetStructuredConfig loads, merges, and validates the mirror configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags (args without the program name)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
