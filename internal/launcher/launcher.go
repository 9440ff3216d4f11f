// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/MKhiriev/go-appium-service/internal/logger"
	"github.com/MKhiriev/go-appium-service/internal/service"
	"github.com/MKhiriev/go-appium-service/internal/validators"
	"github.com/MKhiriev/go-appium-service/models"
	"github.com/rs/zerolog"
)

// waitDelay bounds how long Wait keeps draining output pipes held open by
// orphaned grandchildren after the server itself has exited.
const waitDelay = 5 * time.Second

// ExecLauncher runs the server as a child process.
type ExecLauncher struct {
	logger    *logger.Logger
	validator validators.Validator
	environ   func() []string
}

// NewExecLauncher returns a launcher that forwards the server output to l.
func NewExecLauncher(l *logger.Logger) *ExecLauncher {
	if l == nil {
		l = logger.Nop()
	}

	return &ExecLauncher{
		logger:    l.WithComponent("launcher"),
		validator: validators.NewLaunchValidator(),
		environ:   os.Environ,
	}
}

// Launch spawns the server described by d and returns as soon as the
// process is running. It does not wait for the server to accept
// connections.
//
// ctx only bounds the spawn itself; stopping the server is done through the
// returned handle.
func (l *ExecLauncher) Launch(ctx context.Context, d models.LaunchDescriptor) (service.RunningService, error) {
	if err := l.validator.Validate(ctx, d, validators.FieldExecutable, validators.FieldEntryScript); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStart, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStart, err)
	}

	cmd := exec.Command(d.Executable, d.Arguments()...)
	cmd.Env = l.environment(d.Environment())
	cmd.Stdout = l.logger.Writer(zerolog.DebugLevel, "stdout")
	cmd.Stderr = l.logger.Writer(zerolog.WarnLevel, "stderr")
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	l.logger.Info().Str("command", d.CommandLine()).Msg("starting appium server")
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStart, err)
	}

	return newProcess(cmd, d.URL(), l.logger), nil
}

// environment returns the current process environment with overrides
// appended in key order. Later entries win for os/exec.
func (l *ExecLauncher) environment(overrides map[string]string) []string {
	env := l.environ()
	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		env = append(env, k+"="+overrides[k])
	}
	return env
}
