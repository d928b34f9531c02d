package store

import "errors"

// Sentinel errors returned by [Mirror] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrRootNotDirectory is returned when the mirror root path exists but
	// is a regular file or another non-directory.
	ErrRootNotDirectory = errors.New("mirror root is not a directory")

	// ErrNotDirectory is returned by MkdirAll when a non-directory already
	// occupies the path.
	ErrNotDirectory = errors.New("path exists and is not a directory")

	// ErrSavingFile is returned when streaming a download into the mirror
	// fails. The temporary file is removed and the target is untouched.
	ErrSavingFile = errors.New("failed to save file")
)
