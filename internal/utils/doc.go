// Package utils provides general-purpose helpers shared by the mirror:
// remote/local path normalization, the block content hash used to compare
// local files with remote digests, run identifiers and the HTTP client
// wrapper used by transport adapters.
package utils
