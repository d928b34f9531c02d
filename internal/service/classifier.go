// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/remote-mirror/internal/store"
	"github.com/MKhiriev/remote-mirror/internal/utils"
	"github.com/MKhiriev/remote-mirror/models"
)

// NewClassifier returns the [Classifier] for policy. repairModTime enables
// the [models.StalenessCurrentTouch] state; without it a current file with a
// different timestamp is plain current.
func NewClassifier(policy models.Policy, mirror store.Mirror, repairModTime bool) (Classifier, error) {
	local := localState{mirror: mirror}

	switch policy {
	case models.PolicyContentHash:
		return &hashClassifier{local: local, repairModTime: repairModTime}, nil
	case models.PolicyModTime:
		return &modTimeClassifier{local: local, repairModTime: repairModTime}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}

// localState reads what a policy needs from the mirror, lazily.
type localState struct {
	mirror store.Mirror
}

// stat returns nil info for a missing file.
func (l localState) stat(path string) (os.FileInfo, error) {
	info, err := l.mirror.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat local file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrLocalIsDirectory, path)
	}
	return info, nil
}

func (l localState) contentHash(path string) (string, error) {
	f, err := l.mirror.Open(path)
	if err != nil {
		return "", fmt.Errorf("open local file: %w", err)
	}
	defer f.Close()

	digest, err := utils.ContentHash(f)
	if err != nil {
		return "", fmt.Errorf("hash local file: %w", err)
	}
	return digest, nil
}

// sameSecond compares timestamps at the precision every backend and local
// filesystem can represent.
func sameSecond(a, b time.Time) bool {
	return a.Unix() == b.Unix()
}

func currentOrTouch(repair bool, remote, local time.Time) models.Staleness {
	if repair && !remote.IsZero() && !sameSecond(remote, local) {
		return models.StalenessCurrentTouch
	}
	return models.StalenessCurrent
}
