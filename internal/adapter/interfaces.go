// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for reading a remote
// file tree.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// engine from the storage backend. The package ships a Dropbox HTTP
// implementation ([NewDropboxAdapter]) and an S3 implementation
// ([NewS3Adapter]); [NewRemoteAdapter] picks one from configuration.
//
// Error values defined in errors.go are mapped from transport errors by
// mapHTTPError and mapS3Error so that callers can use [errors.Is] for
// backend-agnostic error handling (e.g. [ErrNotFound] for a missing folder).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/remote-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines read-only access to a hierarchical remote store.
// Implementations are responsible for serialisation, authentication and
// mapping transport-level errors to the sentinel values defined in this
// package.
type RemoteAdapter interface {
	// ListFolder returns the first page of the direct children of path.
	// path is absolute and normalized; the root is "/".
	ListFolder(ctx context.Context, path string) (models.ListingPage, error)

	// ListFolderContinue returns the page following the one that produced
	// cursor.
	ListFolderContinue(ctx context.Context, cursor string) (models.ListingPage, error)

	// Download opens a byte stream of the file at path. The caller must
	// close the returned reader.
	Download(ctx context.Context, path string) (io.ReadCloser, error)
}
