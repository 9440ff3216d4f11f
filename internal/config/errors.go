package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and by the
// parsers of individual sources.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative port or an address that is not an IP literal).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings
	// (for example, an unknown level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidArguments indicates extra server flags that cannot be
	// parsed, e.g. unbalanced quotes or a value without a flag.
	ErrInvalidArguments = errors.New("invalid server arguments")
	// ErrUnsupportedFileFormat indicates a config file whose extension is
	// neither .json nor .yaml/.yml.
	ErrUnsupportedFileFormat = errors.New("unsupported config file format")
)
