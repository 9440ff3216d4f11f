package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAddress        = errors.New("invalid IP address")
	ErrInvalidPort           = errors.New("port must be non-negative")
	ErrInvalidStartupTimeout = errors.New("startup timeout must be greater than zero")
	ErrEmptyExecutable       = errors.New("executable is required")
	ErrMissingEntryScript    = errors.New("entry script is required")
)
