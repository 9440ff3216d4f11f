// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-appium-service/internal/app"
	"github.com/MKhiriev/go-appium-service/internal/logger"
	"github.com/MKhiriev/go-appium-service/internal/platform"
	"github.com/MKhiriev/go-appium-service/internal/scripts"
	"github.com/MKhiriev/go-appium-service/internal/validators"
	"github.com/MKhiriev/go-appium-service/models"
)

const (
	// NodePathEnv names the variable that points at the Node.js binary
	// (node.exe on Windows, node elsewhere).
	NodePathEnv = "NODE_BINARY_PATH"

	// AppiumPathEnv names the variable that points at the Appium entry
	// script: bin/appium.js for servers up to 1.4.x, build/lib/main.js for
	// 1.5.x and later.
	AppiumPathEnv = "APPIUM_BINARY_PATH"

	// DefaultAppiumPort is the port the server listens on unless configured.
	DefaultAppiumPort = 4723

	// DefaultStartupTimeout is generous because the first start of the
	// server is slow on some hosts.
	DefaultStartupTimeout = 120 * time.Second
)

// ServiceBuilder collects the configuration of a local Appium server and
// resolves it into a [models.LaunchDescriptor].
//
// Setters return the builder so calls can be chained. A setter that rejects
// its input keeps the previous value and records the error, which is then
// reported by Err and by Build.
//
// A ServiceBuilder is not safe for concurrent use. Call Close when done with
// it to delete the helper scripts it materialized.
type ServiceBuilder struct {
	host      platform.Host
	runner    platform.Runner
	scripts   *scripts.Cache
	launcher  Launcher
	validator validators.Validator
	logger    *logger.Logger

	nodeExecutable  string
	appiumJS        string
	ipAddress       string
	port            int
	startupTimeout  time.Duration
	logFile         string
	environment     map[string]string
	serverArguments map[string]*string

	err error
}

// Option customizes a ServiceBuilder at construction time.
type Option func(*ServiceBuilder)

// WithHost replaces the host description (environment and OS).
func WithHost(host platform.Host) Option {
	return func(b *ServiceBuilder) { b.host = host }
}

// WithRunner replaces the helper command runner.
func WithRunner(runner platform.Runner) Option {
	return func(b *ServiceBuilder) { b.runner = runner }
}

// WithScriptsDir sets the directory helper scripts are materialized under.
func WithScriptsDir(dir string) Option {
	return func(b *ServiceBuilder) { b.scripts = scripts.NewCache(dir) }
}

// WithLauncher sets the launcher used by Start.
func WithLauncher(launcher Launcher) Option {
	return func(b *ServiceBuilder) { b.launcher = launcher }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(b *ServiceBuilder) { b.logger = l }
}

// NewServiceBuilder returns a builder with the default address, port and
// startup timeout, backed by the real host unless overridden by opts.
func NewServiceBuilder(opts ...Option) *ServiceBuilder {
	b := &ServiceBuilder{
		host:            platform.Default(),
		runner:          platform.NewExecRunner(),
		scripts:         scripts.NewCache(""),
		validator:       validators.NewLaunchValidator(),
		logger:          logger.Nop(),
		ipAddress:       models.DefaultLocalIPAddress,
		port:            DefaultAppiumPort,
		startupTimeout:  DefaultStartupTimeout,
		environment:     make(map[string]string),
		serverArguments: make(map[string]*string),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithNodeExecutable sets which Node.js binary runs the server. Its
// existence is checked by the launcher, not by the builder.
func (b *ServiceBuilder) WithNodeExecutable(path string) *ServiceBuilder {
	b.nodeExecutable = path
	return b
}

// WithAppiumJS sets the server entry script, bypassing the lookup.
func (b *ServiceBuilder) WithAppiumJS(path string) *ServiceBuilder {
	b.appiumJS = path
	return b
}

// WithIPAddress sets the bind address. It is validated by Build; a blank
// address means the default wildcard address.
func (b *ServiceBuilder) WithIPAddress(address string) *ServiceBuilder {
	b.ipAddress = address
	return b
}

// UsingPort sets the port the server listens on. Zero is handed to the
// server unchanged.
func (b *ServiceBuilder) UsingPort(port int) *ServiceBuilder {
	if port < 0 {
		b.err = errors.Join(b.err, fmt.Errorf("%w: %w: %d", ErrInvalidArgument, validators.ErrInvalidPort, port))
		return b
	}

	b.port = port
	return b
}

// UsingAnyFreePort configures the server to start on any available port.
func (b *ServiceBuilder) UsingAnyFreePort() *ServiceBuilder {
	return b.UsingPort(0)
}

// WithStartupTimeout sets how long the launcher may wait for the server.
func (b *ServiceBuilder) WithStartupTimeout(timeout time.Duration) *ServiceBuilder {
	if timeout <= 0 {
		b.err = errors.Join(b.err, fmt.Errorf("%w: %w: %s", ErrInvalidArgument, validators.ErrInvalidStartupTimeout, timeout))
		return b
	}

	b.startupTimeout = timeout
	return b
}

// WithLogFile makes the server write its log to path.
func (b *ServiceBuilder) WithLogFile(path string) *ServiceBuilder {
	b.logFile = path
	return b
}

// WithEnvironment replaces the environment overrides for the server
// process. The map is copied.
func (b *ServiceBuilder) WithEnvironment(env map[string]string) *ServiceBuilder {
	b.environment = make(map[string]string, len(env))
	maps.Copy(b.environment, env)
	return b
}

// WithArgument registers a boolean flag: its presence alone means "true".
// A later registration of the same flag replaces this one.
func (b *ServiceBuilder) WithArgument(argument models.ServerArgument) *ServiceBuilder {
	return b.WithArgumentValue(argument, "")
}

// WithArgumentValue registers a flag with a value. An empty value makes it
// a boolean flag. A later registration of the same flag replaces this one.
func (b *ServiceBuilder) WithArgumentValue(argument models.ServerArgument, value string) *ServiceBuilder {
	b.serverArguments[argument.Argument()] = &value
	return b
}

// Port returns the configured port.
func (b *ServiceBuilder) Port() int {
	return b.port
}

// LogFile returns the configured server log file, or an empty string.
func (b *ServiceBuilder) LogFile() string {
	return b.logFile
}

// StartupTimeout returns the configured startup timeout.
func (b *ServiceBuilder) StartupTimeout() time.Duration {
	return b.startupTimeout
}

// Err reports the errors recorded by setters so far.
func (b *ServiceBuilder) Err() error {
	return b.err
}

// Build resolves the Node.js binary and the entry script, validates the
// configuration and assembles the server arguments.
//
// Resolution may run short-lived helper commands; ctx bounds them.
func (b *ServiceBuilder) Build(ctx context.Context) (models.LaunchDescriptor, error) {
	if b.err != nil {
		return models.LaunchDescriptor{}, fmt.Errorf("error occurred during building service: %w", b.err)
	}

	address, err := validators.NormalizeAddress(b.ipAddress)
	if err != nil {
		return models.LaunchDescriptor{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	b.ipAddress = address

	executable, err := b.resolveNodeExecutable(ctx)
	if err != nil {
		return models.LaunchDescriptor{}, err
	}
	b.logger.Debug().Str("node", executable).Msg("node executable resolved")

	appiumJS, err := b.checkAppiumJS(ctx)
	if err != nil {
		return models.LaunchDescriptor{}, err
	}
	b.logger.Debug().Str("appium_js", appiumJS).Msg("appium entry script resolved")

	descriptor := models.LaunchDescriptor{
		Executable:     executable,
		Address:        address,
		Port:           b.port,
		Args:           assembleArgs(appiumJS, b.port, address, b.logFile, b.serverArguments),
		Env:            maps.Clone(b.environment),
		StartupTimeout: b.startupTimeout,
	}

	if err = b.validator.Validate(ctx, descriptor); err != nil {
		return models.LaunchDescriptor{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	b.logger.Debug().Str("command", descriptor.CommandLine()).Msg("appium service configured")
	return descriptor, nil
}

// Start builds the launch descriptor and hands it to the launcher.
// Nothing is launched if building fails.
func (b *ServiceBuilder) Start(ctx context.Context) (RunningService, error) {
	if b.launcher == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoLauncher, app.MsgNoLauncher)
	}

	descriptor, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := b.launcher.Launch(ctx, descriptor)
	if err != nil {
		return nil, fmt.Errorf("error launching appium service: %w", err)
	}

	b.logger.Info().Str("url", svc.URL()).Int("pid", svc.PID()).Msg("appium service started")
	return svc, nil
}

// Close deletes the helper scripts materialized by the builder. Deletion
// is best effort; failures are logged and never returned.
func (b *ServiceBuilder) Close() error {
	if err := b.scripts.Close(); err != nil {
		b.logger.Debug().Err(err).Msg("error deleting helper scripts")
	}
	return nil
}
