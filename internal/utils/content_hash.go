// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

// ContentHashBlockSize is the block size of the two-level content hash.
// It must match the remote's published algorithm (4 MiB).
const ContentHashBlockSize = 4 * 1024 * 1024

// ContentHasher computes the two-level block hash used by Dropbox:
// the input is split into [ContentHashBlockSize] blocks, each block is hashed
// with SHA-256, and the final digest is SHA-256 over the concatenation of the
// block digests.
//
// ContentHasher implements hash.Hash, so it can be fed with io.Copy.
type ContentHasher struct {
	digests   []byte
	block     hash.Hash
	blockUsed int
}

var _ hash.Hash = (*ContentHasher)(nil)

// NewContentHasher returns a ready-to-use [ContentHasher].
func NewContentHasher() *ContentHasher {
	return &ContentHasher{block: sha256.New()}
}

// Write implements io.Writer. It never returns an error.
func (h *ContentHasher) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		if h.blockUsed == ContentHashBlockSize {
			h.flushBlock()
		}
		n := ContentHashBlockSize - h.blockUsed
		if n > len(p) {
			n = len(p)
		}
		h.block.Write(p[:n])
		h.blockUsed += n
		p = p[n:]
	}
	return written, nil
}

// Sum appends the digest of the data written so far to b.
// It does not change the hasher state.
func (h *ContentHasher) Sum(b []byte) []byte {
	digests := h.digests
	if h.blockUsed > 0 {
		digests = h.block.Sum(append([]byte(nil), digests...))
	}
	sum := sha256.Sum256(digests)
	return append(b, sum[:]...)
}

// Reset clears the hasher state.
func (h *ContentHasher) Reset() {
	h.digests = h.digests[:0]
	h.block.Reset()
	h.blockUsed = 0
}

// Size returns the digest length in bytes.
func (h *ContentHasher) Size() int { return sha256.Size }

// BlockSize returns the SHA-256 block size.
func (h *ContentHasher) BlockSize() int { return sha256.BlockSize }

func (h *ContentHasher) flushBlock() {
	h.digests = h.block.Sum(h.digests)
	h.block.Reset()
	h.blockUsed = 0
}

// ContentHash reads r to EOF and returns its hex-encoded content hash.
//
// Example:
//
//	f, _ := os.Open("report.pdf")
//	defer f.Close()
//	digest, err := utils.ContentHash(f)
func ContentHash(r io.Reader) (string, error) {
	h := NewContentHasher()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("compute content hash: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
