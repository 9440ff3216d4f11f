// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from vars using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
//
// vars replaces the process environment so that the caller decides what is
// visible (see platform.Host.Variables).
func parseEnv(cfg any, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
