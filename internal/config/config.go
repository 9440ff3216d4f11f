// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-appium-service/internal/platform"
)

// StructuredConfig is the top-level configuration container for the
// appium-service command. It is populated by merging values from an
// optional config file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json/yaml: key names in the config file.
type StructuredConfig struct {
	// Server holds everything needed to resolve and launch the Appium
	// server.
	Server Server `envPrefix:"APPIUM_" json:"server" yaml:"server"`

	// Log holds settings of the command's own logger.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG" json:"-" yaml:"-"`

	// DryRun prints the resolved launch instead of starting the server.
	// Only settable with the -dry-run flag.
	DryRun bool `json:"-" yaml:"-"`
}

// Server holds the launch settings of the Appium server.
type Server struct {
	// NodePath is the Node.js binary. Resolved automatically when empty.
	// Env: APPIUM_NODE_PATH
	NodePath string `env:"NODE_PATH" json:"node_path" yaml:"node_path"`

	// AppiumJS is the server entry script. Looked up in the global npm
	// package root when empty.
	// Env: APPIUM_JS_PATH
	AppiumJS string `env:"JS_PATH" json:"appium_js" yaml:"appium_js"`

	// Address is the IP address the server binds to (e.g. "0.0.0.0", "::1").
	// Env: APPIUM_ADDRESS
	Address string `env:"ADDRESS" json:"address" yaml:"address"`

	// Port is the port the server listens on. Nil means the default port;
	// zero means any free port.
	// Env: APPIUM_PORT
	Port *int `env:"PORT" json:"port" yaml:"port"`

	// StartupTimeout is how long the caller is prepared to wait for the
	// server (e.g. "90s", "2m"). Zero means the default.
	// Env: APPIUM_STARTUP_TIMEOUT
	StartupTimeout time.Duration `env:"STARTUP_TIMEOUT" json:"startup_timeout" yaml:"startup_timeout"`

	// LogFile makes the server write its own log to the given file.
	// Env: APPIUM_LOG_FILE
	LogFile string `env:"LOG_FILE" json:"log_file" yaml:"log_file"`

	// Args are extra server flags as a shell-quoted string
	// (e.g. `--relaxed-security --base-path "/wd/hub"`).
	// Env: APPIUM_ARGS
	Args Arguments `env:"ARGS" json:"args" yaml:"args"`

	// Environment is added to the server process environment.
	// Env: APPIUM_ENVIRONMENT as KEY:VALUE,KEY:VALUE
	Environment map[string]string `env:"ENVIRONMENT" json:"environment" yaml:"environment"`
}

// Log holds the command's logging settings.
type Log struct {
	// Level is the minimum level emitted (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`

	// Console switches from JSON to human readable output.
	// Env: LOG_CONSOLE
	Console bool `env:"CONSOLE" json:"console" yaml:"console"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Precedence from lowest to highest:
//  1. Config file (path resolved from sources 2 and 3)
//  2. Environment variables of host
//  3. Command-line flags in args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(host platform.Host, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(host).
		withFlags(args).
		withFile().
		build()
}
