package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/remote-mirror/internal/adapter"
	"github.com/MKhiriev/remote-mirror/internal/logger"
	"github.com/MKhiriev/remote-mirror/internal/utils"
	"github.com/MKhiriev/remote-mirror/models"
)

type remoteLister struct {
	remote adapter.RemoteAdapter
	logger *logger.Logger
}

// NewLister returns a [Lister] that follows continuation cursors of remote
// until the listing is exhausted.
func NewLister(remote adapter.RemoteAdapter, log *logger.Logger) Lister {
	return &remoteLister{remote: remote, logger: log}
}

// List implements [Lister]. Entries from later pages replace earlier ones
// with the same name. A soft error discards the partial result: the folder
// is treated as empty and the walk goes on.
func (l *remoteLister) List(ctx context.Context, folder string) (map[string]models.RemoteEntry, error) {
	path := utils.NormalizePath(folder)
	defer l.logger.Stopwatch("list_folder")()

	page, err := l.remote.ListFolder(ctx, path)
	if err != nil {
		return l.fail(path, err)
	}

	entries := make(map[string]models.RemoteEntry, len(page.Entries))
	merge(entries, page)

	for page.HasMore {
		l.logger.Debug().Str("path", path).Msg("more entries for folder")

		page, err = l.remote.ListFolderContinue(ctx, page.Cursor)
		if err != nil {
			return l.fail(path, err)
		}
		merge(entries, page)
	}

	return entries, nil
}

func (l *remoteLister) fail(path string, err error) (map[string]models.RemoteEntry, error) {
	if !isSoftListingError(err) {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	l.logger.Warn().
		Err(err).
		Str("path", path).
		Msg("folder listing failed, assumed empty")
	return map[string]models.RemoteEntry{}, nil
}

// isSoftListingError reports errors the backend raised about this folder
// only; they say nothing about the rest of the tree.
func isSoftListingError(err error) bool {
	return errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrListingFailed) ||
		errors.Is(err, adapter.ErrInvalidCursor)
}

func merge(entries map[string]models.RemoteEntry, page models.ListingPage) {
	for _, entry := range page.Entries {
		entries[entry.EntryName()] = entry
	}
}
