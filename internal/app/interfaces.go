// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"

	"github.com/MKhiriev/remote-mirror/internal/service"
)

// Runner defines the lifecycle contract of the mirror process.
type Runner interface {
	// Run blocks until the work is done or ctx is cancelled and returns the
	// exit code of the process.
	Run(ctx context.Context) service.ExitCode
}
