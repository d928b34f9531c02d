package service

import "errors"

var (
	// ErrAborted wraps every error that stops a run before the worklist is
	// empty.
	ErrAborted = errors.New("sync aborted")
	// ErrLocalRootUnusable means the mirror directory is missing and could
	// not (or must not) be created, or is not a directory.
	ErrLocalRootUnusable = errors.New("local directory is unusable")

	ErrUnexpectedKind   = errors.New("unexpected metadata kind")
	ErrLocalIsDirectory = errors.New("local path is a directory")
	ErrUnknownPolicy    = errors.New("unknown staleness policy")
	ErrUnknownStaleness = errors.New("unknown staleness verdict")
)
