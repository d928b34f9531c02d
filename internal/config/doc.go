// Package config provides configuration loading, merging, and validation
// facilities for the mirror.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The JSON file path itself comes from the CONFIG variable or the -c flag.
// Defaults are applied after merging, then the result is validated.
//
// The main entry point is [GetStructuredConfig].
package config
