package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates an unknown backend or missing
	// backend credentials.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidLocalConfigs indicates a missing local mirror directory.
	ErrInvalidLocalConfigs = errors.New("invalid local configuration")
	// ErrInvalidSyncConfigs indicates an unknown policy or traversal, or a
	// policy the backend cannot serve.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates an unknown log format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidArguments indicates unexpected positional arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
)
