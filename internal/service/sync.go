// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/MKhiriev/remote-mirror/internal/adapter"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/store"
	"github.com/MKhiriev/remote-mirror/internal/utils"
	"github.com/MKhiriev/remote-mirror/models"
)

type syncService struct {
	remote    adapter.RemoteAdapter
	mirror    store.Mirror
	lister    Lister
	confirmer Confirmer

	logger *logger.Logger
}

// NewSyncService constructs the sync driver. confirmer may be nil, in which
// case a missing mirror directory is created without asking.
func NewSyncService(remote adapter.RemoteAdapter, mirror store.Mirror, confirmer Confirmer, log *logger.Logger) SyncService {
	return &syncService{
		remote:    remote,
		mirror:    mirror,
		lister:    NewLister(remote, log),
		confirmer: confirmer,
		logger:    log,
	}
}

// run is the state of one pass. It is owned by a single Run call.
type run struct {
	req        models.SyncRequest
	stats      *models.RunStats
	classifier Classifier
	folders    *worklist
	logger     *logger.Logger
}

// Run implements [SyncService].
//
// The local root is checked before any listing. The folders are then
// visited in worklist order; every entry of a folder is acted on in name
// order and per-entry failures are recorded without stopping the walk.
func (s *syncService) Run(ctx context.Context, req models.SyncRequest) (*models.RunStats, error) {
	stats := models.NewRunStats(utils.NewRunID())
	defer stats.Finish()

	log := s.logger.WithRunID(stats.RunID)
	start := utils.NormalizePath(req.Folder)

	log.Info().
		Str("remote", start).
		Str("local", s.mirror.Root()).
		Str("policy", string(req.Policy)).
		Str("traversal", string(req.Traversal)).
		Bool("dry_run", req.DryRun).
		Msg("sync started")

	if err := s.prepareRoot(ctx, req, log); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	classifier, err := NewClassifier(req.Policy, s.mirror, req.PreserveModTime)
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	r := &run{
		req:        req,
		stats:      stats,
		classifier: classifier,
		folders:    newWorklist(req.Traversal, start),
		logger:     log,
	}

	for {
		if err = ctx.Err(); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrAborted, err)
		}

		folder, ok := r.folders.pop()
		if !ok {
			return stats, nil
		}
		stats.FoldersChecked++
		log.Debug().Str("folder", folder).Int("pending", r.folders.len()).Msg("current folder")

		entries, listErr := s.lister.List(ctx, folder)
		if err = ctx.Err(); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		if listErr != nil {
			return stats, fmt.Errorf("%w: %w", ErrAborted, listErr)
		}

		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			out := s.handleEntry(ctx, r, folder, entries[name])
			if out.kind == outcomeFolder {
				r.folders.push(out.remotePath)
			}
			if out.kind == outcomeFailed {
				log.Error().
					Err(out.cause).
					Str("remote", out.remotePath).
					Str("local", s.osPath(out.localPath)).
					Msg("failed to sync item")
			}
			out.applyTo(stats)
		}
	}
}

// prepareRoot makes sure the mirror directory exists, asking the confirmer
// before creating it.
func (s *syncService) prepareRoot(ctx context.Context, req models.SyncRequest, log *logger.Logger) error {
	exists, err := s.mirror.RootExists()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalRootUnusable, err)
	}
	if exists {
		return nil
	}

	log.Warn().Str("local", s.mirror.Root()).Msg("local directory does not exist")
	if req.DryRun {
		return nil
	}

	if s.confirmer != nil {
		ok, err := s.confirmer.Confirm(ctx, fmt.Sprintf("Create local directory %s?", s.mirror.Root()))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLocalRootUnusable, err)
		}
		if !ok {
			return fmt.Errorf("%w: creation of %s declined", ErrLocalRootUnusable, s.mirror.Root())
		}
	}

	if err = s.mirror.EnsureRoot(); err != nil {
		return fmt.Errorf("%w: %w", ErrLocalRootUnusable, err)
	}
	log.Info().Str("local", s.mirror.Root()).Msg("created local directory")
	return nil
}

// handleEntry dispatches on the entry variant. Unknown variants are
// failures, never guesses.
func (s *syncService) handleEntry(ctx context.Context, r *run, folder string, entry models.RemoteEntry) outcome {
	remotePath := utils.NormalizePath(folder, entry.EntryName())
	localPath := utils.LocalPath(remotePath)

	switch e := entry.(type) {
	case models.FileEntry:
		return s.syncFile(ctx, r, e, remotePath, localPath)
	case models.FolderEntry:
		return s.syncFolder(r, remotePath, localPath)
	case models.UnknownEntry:
		return failed(remotePath, localPath, fmt.Errorf("%w %s", ErrUnexpectedKind, e.Kind))
	default:
		return failed(remotePath, localPath, fmt.Errorf("%w %T", ErrUnexpectedKind, entry))
	}
}

func (s *syncService) syncFile(ctx context.Context, r *run, file models.FileEntry, remotePath, localPath string) outcome {
	state, err := r.classifier.Classify(file, localPath)
	if err != nil {
		return failed(remotePath, localPath, err)
	}

	r.logger.Debug().
		Str("remote", remotePath).
		Str("state", state.String()).
		Msg("classified file")

	switch state {
	case models.StalenessSkip:
		r.logger.Debug().Str("remote", remotePath).Msg("symlink, skipping")
		return outcome{kind: outcomeSkipped, remotePath: remotePath}

	case models.StalenessCurrent:
		return outcome{kind: outcomeChecked, remotePath: remotePath}

	case models.StalenessCurrentTouch:
		if !r.req.DryRun {
			if err = s.mirror.Chtimes(localPath, file.ModTime); err != nil {
				return failed(remotePath, localPath, fmt.Errorf("repair modification time: %w", err))
			}
		}
		r.logger.Debug().Str("remote", remotePath).Time("mtime", file.ModTime).Msg("repaired modification time")
		return outcome{kind: outcomeChecked, remotePath: remotePath}
	}

	if !state.NeedsDownload() {
		return failed(remotePath, localPath, fmt.Errorf("%w %d", ErrUnknownStaleness, state))
	}

	if r.req.DryRun {
		r.logger.Info().Str("remote", remotePath).Str("state", state.String()).Msg("would download")
		return outcome{kind: outcomeDownloaded, remotePath: remotePath}
	}

	if err = s.download(ctx, r, file, remotePath, localPath); err != nil {
		return failed(remotePath, localPath, err)
	}
	return outcome{kind: outcomeDownloaded, remotePath: remotePath, localPath: localPath}
}

func (s *syncService) download(ctx context.Context, r *run, file models.FileEntry, remotePath, localPath string) error {
	r.logger.Debug().Str("remote", remotePath).Int64("size", file.Size).Msg("downloading")

	body, err := s.remote.Download(ctx, remotePath)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer body.Close()

	var mtime time.Time
	if r.req.PreserveModTime {
		mtime = file.ModTime
	}

	return s.mirror.Save(localPath, body, mtime)
}

func (s *syncService) syncFolder(r *run, remotePath, localPath string) outcome {
	if r.req.DryRun {
		if _, err := s.mirror.Stat(localPath); err != nil {
			r.logger.Info().Str("remote", remotePath).Msg("would create folder")
		}
		return outcome{kind: outcomeFolder, remotePath: remotePath}
	}

	if err := s.mirror.MkdirAll(localPath); err != nil {
		return failed(remotePath, localPath, fmt.Errorf("create folder: %w", err))
	}
	return outcome{kind: outcomeFolder, remotePath: remotePath, localPath: localPath}
}

func (s *syncService) osPath(localPath string) string {
	if localPath == "" {
		return ""
	}
	return filepath.Join(s.mirror.Root(), filepath.FromSlash(localPath))
}
