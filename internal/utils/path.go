// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"os"
	"strings"
)

// RootPath is the normalized remote root folder.
const RootPath = "/"

// NormalizePath joins segments into a canonical remote path.
//
// The local separator is converted to "/", every run of slashes is collapsed
// into one, a leading "/" is always present and the trailing "/" is removed
// except for the root itself. Normalizing a normalized path returns it
// unchanged.
//
// Example:
//
//	utils.NormalizePath("/Photos/", "2024//", "a.jpg") // "/Photos/2024/a.jpg"
//	utils.NormalizePath("")                          // "/"
func NormalizePath(segments ...string) string {
	joined := collapse(segments)
	if joined == "" {
		return RootPath
	}
	return "/" + joined
}

// LocalPath joins segments into a canonical mirror-relative local path.
//
// It follows the same collapsing rules as [NormalizePath] but never carries a
// leading slash, so the result can be handed to a filesystem rooted at the
// mirror directory. The mirror root itself is ".".
func LocalPath(segments ...string) string {
	joined := collapse(segments)
	if joined == "" {
		return "."
	}
	return joined
}

// BaseName returns the last element of a normalized remote path.
func BaseName(path string) string {
	path = NormalizePath(path)
	if path == RootPath {
		return ""
	}
	return path[strings.LastIndex(path, "/")+1:]
}

func collapse(segments []string) string {
	parts := make([]string, 0, len(segments)*2)
	for _, segment := range segments {
		if os.PathSeparator != '/' {
			segment = strings.ReplaceAll(segment, string(os.PathSeparator), "/")
		}
		for _, part := range strings.Split(segment, "/") {
			if part == "" {
				continue
			}
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "/")
}
