// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"io"
	"os"
	"time"
)

// Mirror is the local side of a sync: a directory tree rooted at the mirror
// directory. All paths are mirror-relative, "/"-separated and normalized
// (see utils.LocalPath); "." is the root.
type Mirror interface {
	// Root returns the absolute OS path of the mirror directory.
	Root() string

	// RootExists reports whether the mirror directory exists. A root that
	// exists but is not a directory yields [ErrRootNotDirectory].
	RootExists() (bool, error)

	// EnsureRoot creates the mirror directory with all parents.
	EnsureRoot() error

	// Stat returns file info for path. Missing paths yield an error matching
	// os.ErrNotExist.
	Stat(path string) (os.FileInfo, error)

	// MkdirAll creates the directory path with all parents.
	MkdirAll(path string) error

	// Open opens the file at path for reading.
	Open(path string) (io.ReadCloser, error)

	// Save atomically replaces the file at path with the contents of r: the
	// data lands in a temporary file next to the target which is then
	// renamed. A non-zero mtime is applied after the rename.
	Save(path string, r io.Reader, mtime time.Time) error

	// Chtimes sets the access and modification time of path to mtime.
	Chtimes(path string, mtime time.Time) error
}
