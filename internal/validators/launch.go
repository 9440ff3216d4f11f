package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-appium-service/models"
)

// Field name constants accepted by [LaunchValidator].
const (
	// FieldExecutable targets the Node.js executable path.
	FieldExecutable = "executable"

	// FieldAddress targets the bind address.
	FieldAddress = "address"

	// FieldPort targets the bind port.
	FieldPort = "port"

	// FieldStartupTimeout targets the startup timeout.
	FieldStartupTimeout = "startup_timeout"

	// FieldEntryScript targets the first argument, which must be the
	// server entry script.
	FieldEntryScript = "entry_script"
)

// LaunchValidator checks a [models.LaunchDescriptor] before it is handed to
// a launcher.
type LaunchValidator struct{}

// NewLaunchValidator constructs a LaunchValidator and returns it as the
// Validator interface.
func NewLaunchValidator() Validator {
	return &LaunchValidator{}
}

// Validate accepts models.LaunchDescriptor and *models.LaunchDescriptor.
// When no fields are given every field is validated.
func (v *LaunchValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LaunchDescriptor:
		return v.validateDescriptor(ctx, value, fields...)
	case *models.LaunchDescriptor:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDescriptor(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *LaunchValidator) validateDescriptor(_ context.Context, d models.LaunchDescriptor, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExecutable, FieldEntryScript, FieldAddress, FieldPort, FieldStartupTimeout}
	}

	for _, f := range fields {
		switch f {
		case FieldExecutable:
			if strings.TrimSpace(d.Executable) == "" {
				return ErrEmptyExecutable
			}
		case FieldEntryScript:
			if len(d.Args) == 0 || strings.TrimSpace(d.Args[0]) == "" {
				return ErrMissingEntryScript
			}
		case FieldAddress:
			if _, err := NormalizeAddress(d.Address); err != nil {
				return err
			}
		case FieldPort:
			if d.Port < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidPort, d.Port)
			}
		case FieldStartupTimeout:
			if d.StartupTimeout <= 0 {
				return fmt.Errorf("%w: %s", ErrInvalidStartupTimeout, d.StartupTimeout)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
