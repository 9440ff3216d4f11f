// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-appium-service/internal/validators"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be handed to
// the service builder.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port != nil && *cfg.Server.Port < 0 {
		return fmt.Errorf("%w: port must not be negative: %d", ErrInvalidServerConfigs, *cfg.Server.Port)
	}

	if cfg.Server.StartupTimeout < 0 {
		return fmt.Errorf("%w: startup timeout must be positive: %s", ErrInvalidServerConfigs, cfg.Server.StartupTimeout)
	}

	if _, err := validators.NormalizeAddress(cfg.Server.Address); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if _, err := cfg.Server.Args.Pairs(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if level := strings.TrimSpace(cfg.Log.Level); level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
