// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Keys come from the `env`
// and `envPrefix` tags, so APP_*, ADAPTER_*, STORAGE_*, WORKERS_* and STUB_*
// land in their sections. Durations use time.ParseDuration syntax.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}
