// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the one-way sync engine: listing remote
// folders, deciding which local copies are stale, walking the tree and
// reporting the outcome of a run.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/remote-mirror/models"
)

// Lister flattens the paginated listing of one remote folder.
type Lister interface {
	// List returns the direct children of folder keyed by name. Endpoint
	// errors (missing folder, rejected path or cursor) are logged and yield
	// an empty mapping; credential, throttling, transport and decoding
	// failures are returned.
	List(ctx context.Context, folder string) (map[string]models.RemoteEntry, error)
}

// Classifier decides whether the local copy of a remote file must be
// downloaded. The policy is fixed for the lifetime of a classifier.
type Classifier interface {
	// Classify compares entry against the mirror-relative localPath.
	// An error means the entry could not be classified and is a per-entry
	// failure.
	Classify(entry models.FileEntry, localPath string) (models.Staleness, error)
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// SyncService runs one sync pass.
type SyncService interface {
	// Run walks the remote tree from req.Folder and brings the mirror up to
	// date. The returned stats are never nil; a non-nil error wraps
	// [ErrAborted] and means the walk did not finish.
	Run(ctx context.Context, req models.SyncRequest) (*models.RunStats, error)
}

// Reporter turns the result of a run into log lines, optional metrics and
// a process exit code.
type Reporter interface {
	Report(stats *models.RunStats, runErr error) ExitCode
}

// SyncJob runs syncs once or periodically.
type SyncJob interface {
	// RunOnce performs a single sync and reports it.
	RunOnce(ctx context.Context, req models.SyncRequest) ExitCode

	// Start runs a sync immediately and then every interval until ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context, req models.SyncRequest, interval time.Duration)

	// Stop cancels the periodic job and waits for the running sync to end.
	Stop()

	// LastExitCode returns the exit code of the last completed run, or
	// [ExitAborted] when no run has completed.
	LastExitCode() ExitCode
}
