// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/remote-mirror/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. All problems are reported at
// once, joined with errors.Join.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Remote.Backend {
	case BackendDropbox:
		hasRefresh := cfg.Dropbox.RefreshToken != "" && cfg.Dropbox.AppKey != ""
		if !hasRefresh && cfg.Dropbox.AccessToken == "" {
			errs = append(errs, fmt.Errorf("%w: dropbox needs a refresh token with app key or an access token", ErrInvalidRemoteConfigs))
		}
		if cfg.Dropbox.MaxRetries != nil && *cfg.Dropbox.MaxRetries < 0 {
			errs = append(errs, fmt.Errorf("%w: negative dropbox max retries", ErrInvalidRemoteConfigs))
		}
	case BackendS3:
		if cfg.S3.Bucket == "" {
			errs = append(errs, fmt.Errorf("%w: s3 bucket is required", ErrInvalidRemoteConfigs))
		}
		if cfg.Sync.Policy == string(models.PolicyContentHash) {
			errs = append(errs, fmt.Errorf("%w: s3 backend does not provide content hashes, use mtime policy", ErrInvalidSyncConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown backend %q", ErrInvalidRemoteConfigs, cfg.Remote.Backend))
	}

	if cfg.Local.Directory == "" {
		errs = append(errs, fmt.Errorf("%w: local directory is required", ErrInvalidLocalConfigs))
	}

	switch models.Policy(cfg.Sync.Policy) {
	case models.PolicyContentHash, models.PolicyModTime:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown policy %q", ErrInvalidSyncConfigs, cfg.Sync.Policy))
	}

	switch models.Traversal(cfg.Sync.Traversal) {
	case models.TraversalDepthFirst, models.TraversalBreadthFirst:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown traversal %q", ErrInvalidSyncConfigs, cfg.Sync.Traversal))
	}

	if cfg.Sync.Interval < 0 {
		errs = append(errs, fmt.Errorf("%w: negative interval", ErrInvalidSyncConfigs))
	}

	switch cfg.Log.Format {
	case LogFormatJSON, LogFormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown log format %q", ErrInvalidLogConfigs, cfg.Log.Format))
	}

	return errors.Join(errs...)
}
