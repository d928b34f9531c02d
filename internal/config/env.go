// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environ using the `env` and `envPrefix` tags of
// [StructuredConfig]. A nil environ reads the process environment.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
