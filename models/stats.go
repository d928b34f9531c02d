// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Failure records one item that could not be synced.
type Failure struct {
	// RemotePath is the normalized remote path of the failed item.
	RemotePath string

	// LocalPath is the mirror-relative local path, if one was computed.
	LocalPath string

	// Cause is the error that made the item fail.
	Cause error
}

func (f Failure) String() string {
	if f.LocalPath == "" {
		return fmt.Sprintf("%s: %v", f.RemotePath, f.Cause)
	}
	return fmt.Sprintf("%s (%s): %v", f.RemotePath, f.LocalPath, f.Cause)
}

// RunStats holds the counters of a single sync run.
//
// A RunStats value is created by the sync driver when a run starts, mutated
// only by that driver, and returned to the caller when the run ends.
type RunStats struct {
	// RunID identifies the run in logs and metrics.
	RunID string

	// FoldersChecked counts remote folders popped from the worklist.
	FoldersChecked int

	// FilesChecked counts files whose local copy was already current.
	FilesChecked int

	// FilesDownloaded counts files fetched because they were absent or stale.
	FilesDownloaded int

	// Failures lists failed items in the order they were encountered.
	Failures []Failure

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRunStats returns empty counters stamped with runID and the start time.
func NewRunStats(runID string) *RunStats {
	return &RunStats{RunID: runID, StartedAt: time.Now()}
}

// AddFailure appends a failure record.
func (s *RunStats) AddFailure(remotePath, localPath string, cause error) {
	s.Failures = append(s.Failures, Failure{RemotePath: remotePath, LocalPath: localPath, Cause: cause})
}

// HasFailures reports whether at least one item failed.
func (s *RunStats) HasFailures() bool {
	return len(s.Failures) > 0
}

// Finish stamps the end time of the run.
func (s *RunStats) Finish() {
	s.FinishedAt = time.Now()
}

// Duration returns how long the run took, or zero when it has not finished.
func (s *RunStats) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
