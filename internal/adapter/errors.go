package adapter

import "errors"

var (
	// ErrNotFound means the requested folder or file does not exist.
	ErrNotFound = errors.New("remote path not found")
	// ErrListingFailed is a backend-reported listing error other than not found.
	ErrListingFailed = errors.New("listing failed")
	// ErrUnauthorized means the credentials were rejected.
	ErrUnauthorized = errors.New("remote unauthorized")
	// ErrRateLimited means the backend kept throttling after all retries.
	ErrRateLimited = errors.New("remote rate limited")
	// ErrUnavailable means the backend kept failing with 5xx after all retries.
	ErrUnavailable = errors.New("remote unavailable")
	// ErrBadRequest means the backend rejected the request as malformed.
	ErrBadRequest = errors.New("bad request")
	// ErrInvalidCursor means a continuation cursor could not be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrUnknownBackend is returned by the factory for unsupported backends.
	ErrUnknownBackend = errors.New("unknown remote backend")
)
