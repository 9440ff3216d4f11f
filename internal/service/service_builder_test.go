// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-appium-service/internal/mock"
	"github.com/MKhiriev/go-appium-service/internal/platform"
	"github.com/MKhiriev/go-appium-service/internal/service"
	"github.com/MKhiriev/go-appium-service/internal/validators"
	"github.com/MKhiriev/go-appium-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("// stub"), 0o755))
	return path
}

func host(goos string, env map[string]string) platform.Host {
	return platform.Host{
		LookupEnv: func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		},
		Environ: func() []string { return nil },
		GOOS:    goos,
	}
}

// newTestBuilder returns a builder on a simulated Linux host with an empty
// environment and a runner that fails the test on any unexpected command.
func newTestBuilder(t *testing.T, ctrl *gomock.Controller, opts ...service.Option) (*service.ServiceBuilder, *mock.MockRunner) {
	t.Helper()
	runner := mock.NewMockRunner(ctrl)

	base := []service.Option{
		service.WithHost(host("linux", nil)),
		service.WithRunner(runner),
		service.WithScriptsDir(t.TempDir()),
	}
	b := service.NewServiceBuilder(append(base, opts...)...)
	t.Cleanup(func() { _ = b.Close() })

	return b, runner
}

// expectCommand wires runner to hand out a command printing stdout.
func expectCommand(ctrl *gomock.Controller, runner *mock.MockRunner, stdout string, args ...any) *mock.MockCommand {
	cmd := mock.NewMockCommand(ctrl)
	runner.EXPECT().Command(args[0], args[1:]...).Return(cmd)
	cmd.EXPECT().Execute(gomock.Any()).Return(nil)
	cmd.EXPECT().Stdout().Return(stdout)
	cmd.EXPECT().Destroy().Times(1)
	return cmd
}

// ── end-to-end scenarios ──────────────────────────────────────────────────────

func TestBuild_ExplicitScriptWithDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "appium", "build", "lib", "main.js"))

	b, _ := newTestBuilder(t, ctrl)
	d, err := b.WithNodeExecutable(node).WithAppiumJS(script).Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{script, "--port", "4723", "--address", "0.0.0.0"}, d.Args)
	assert.Equal(t, node, d.Executable)
	assert.Equal(t, 4723, d.Port)
	assert.Equal(t, "0.0.0.0", d.Address)
	assert.Equal(t, 120*time.Second, d.StartupTimeout)
	assert.Empty(t, d.Env)
}

func TestBuild_LogFileAndBooleanFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))
	logPath := filepath.Join(dir, "logs", "appium.log")

	b, _ := newTestBuilder(t, ctrl)
	d, err := b.WithNodeExecutable(node).
		WithAppiumJS(script).
		WithLogFile(logPath).
		WithArgument(models.RelaxedSecurity).
		Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		script, "--port", "4723", "--address", "0.0.0.0",
		"--log", logPath,
		"--relaxed-security",
	}, d.Args)
}

func TestBuild_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	script := touch(t, filepath.Join(dir, "main.js"))

	// no runner or launcher expectations: nothing may be spawned
	launcher := mock.NewMockLauncher(ctrl)
	b, _ := newTestBuilder(t, ctrl, service.WithLauncher(launcher))
	b.WithAppiumJS(script).WithIPAddress("999.999.999.999")

	_, err := b.Build(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)
	assert.ErrorIs(t, err, validators.ErrInvalidAddress)

	svc, err := b.Start(context.Background())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestBuild_NoAppiumAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := touch(t, filepath.Join(t.TempDir(), "node"))

	b, runner := newTestBuilder(t, ctrl)
	expectCommand(ctrl, runner, "  \n", "bash", "-l", gomock.Any())

	_, err := b.WithNodeExecutable(node).Build(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, err.Error(), filepath.Join("bin", "appium.js"))
	assert.Contains(t, err.Error(), filepath.Join("build", "lib", "main.js"))

	var lookupErr *service.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "  \n", lookupErr.Output)
	assert.Empty(t, lookupErr.SearchDir)
}

// ── address ───────────────────────────────────────────────────────────────────

func TestBuild_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"blank defaults to wildcard", "", "0.0.0.0"},
		{"ipv4 unchanged", "127.0.0.1", "127.0.0.1"},
		{"ipv6 unchanged", "::1", "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := t.TempDir()
			node := touch(t, filepath.Join(dir, "node"))
			script := touch(t, filepath.Join(dir, "main.js"))

			b, _ := newTestBuilder(t, ctrl)
			d, err := b.WithNodeExecutable(node).WithAppiumJS(script).WithIPAddress(tt.address).Build(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Address)
			assert.Equal(t, []string{"--address", tt.want}, d.Args[3:5])
		})
	}
}

// ── setters ───────────────────────────────────────────────────────────────────

func TestNewServiceBuilder_Defaults(t *testing.T) {
	b := service.NewServiceBuilder()
	t.Cleanup(func() { _ = b.Close() })

	assert.Equal(t, service.DefaultAppiumPort, b.Port())
	assert.Equal(t, service.DefaultStartupTimeout, b.StartupTimeout())
	assert.Empty(t, b.LogFile())
	assert.NoError(t, b.Err())
}

func TestWithStartupTimeout(t *testing.T) {
	b := service.NewServiceBuilder()

	b.WithStartupTimeout(30 * time.Second)
	assert.Equal(t, 30*time.Second, b.StartupTimeout())
	assert.NoError(t, b.Err())

	b.WithStartupTimeout(2 * time.Minute)
	assert.Equal(t, 2*time.Minute, b.StartupTimeout())
}

func TestWithStartupTimeout_RejectsNonPositive(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		t.Run(timeout.String(), func(t *testing.T) {
			b := service.NewServiceBuilder().WithStartupTimeout(45 * time.Second)

			b.WithStartupTimeout(timeout)

			assert.Equal(t, 45*time.Second, b.StartupTimeout())
			require.Error(t, b.Err())
			assert.ErrorIs(t, b.Err(), service.ErrInvalidArgument)
			assert.ErrorIs(t, b.Err(), validators.ErrInvalidStartupTimeout)

			_, err := b.Build(context.Background())
			assert.ErrorIs(t, err, service.ErrInvalidArgument)
		})
	}
}

func TestUsingPort(t *testing.T) {
	b := service.NewServiceBuilder()

	b.UsingPort(5000)
	assert.Equal(t, 5000, b.Port())

	b.UsingAnyFreePort()
	assert.Equal(t, 0, b.Port())

	b.UsingPort(-1)
	assert.Equal(t, 0, b.Port())
	assert.ErrorIs(t, b.Err(), service.ErrInvalidArgument)
	assert.ErrorIs(t, b.Err(), validators.ErrInvalidPort)
}

func TestBuild_CustomPort(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	b, _ := newTestBuilder(t, ctrl)
	d, err := b.WithNodeExecutable(node).WithAppiumJS(script).UsingPort(4800).Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4800, d.Port)
	assert.Equal(t, []string{"--port", "4800"}, d.Args[1:3])
}

func TestWithArgument_LastWriteWins(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *service.ServiceBuilder)
		want  []string
	}{
		{
			name: "boolean then valued",
			setup: func(b *service.ServiceBuilder) {
				b.WithArgument(models.LogLevel).WithArgumentValue(models.LogLevel, "debug")
			},
			want: []string{"--log-level", "debug"},
		},
		{
			name: "valued then boolean",
			setup: func(b *service.ServiceBuilder) {
				b.WithArgumentValue(models.LogLevel, "debug").WithArgument(models.LogLevel)
			},
			want: []string{"--log-level"},
		},
		{
			name: "valued twice",
			setup: func(b *service.ServiceBuilder) {
				b.WithArgumentValue(models.BasePath, "/a").WithArgumentValue(models.BasePath, "/wd/hub")
			},
			want: []string{"--base-path", "/wd/hub"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := t.TempDir()
			node := touch(t, filepath.Join(dir, "node"))
			script := touch(t, filepath.Join(dir, "main.js"))

			b, _ := newTestBuilder(t, ctrl)
			b.WithNodeExecutable(node).WithAppiumJS(script)
			tt.setup(b)

			d, err := b.Build(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Args[5:])
		})
	}
}

func TestWithArgument_BlankNameSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	b, _ := newTestBuilder(t, ctrl)
	d, err := b.WithNodeExecutable(node).
		WithAppiumJS(script).
		WithArgumentValue(models.GeneralServerFlag(""), "orphan").
		WithArgument(models.SessionOverride).
		Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"--session-override"}, d.Args[5:])
	assert.NotContains(t, d.Args, "orphan")
}

func TestWithEnvironment_Copied(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	env := map[string]string{"ANDROID_HOME": "/opt/android"}
	b, _ := newTestBuilder(t, ctrl)
	b.WithNodeExecutable(node).WithAppiumJS(script).WithEnvironment(env)
	env["ANDROID_HOME"] = "changed"

	d, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ANDROID_HOME": "/opt/android"}, d.Env)
}

// ── node executable resolution ────────────────────────────────────────────────

func TestResolveNode_FromEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	b, _ := newTestBuilder(t, ctrl, service.WithHost(host("linux", map[string]string{
		service.NodePathEnv: node,
	})))

	d, err := b.WithAppiumJS(script).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, node, d.Executable)
}

func TestResolveNode_PropertyBeatsEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	fromEnv := touch(t, filepath.Join(dir, "env", "node"))
	fromProp := touch(t, filepath.Join(dir, "prop", "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	h := host("linux", map[string]string{service.NodePathEnv: fromEnv})
	h.Properties = map[string]string{service.NodePathEnv: fromProp}
	b, _ := newTestBuilder(t, ctrl, service.WithHost(h))

	d, err := b.WithAppiumJS(script).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fromProp, d.Executable)
}

func TestResolveNode_ViaHelper(t *testing.T) {
	tests := []struct {
		goos string
		exe  string
	}{
		{"linux", "node"},
		{"darwin", "node"},
		{"windows", "node.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := t.TempDir()
			node := touch(t, filepath.Join(dir, "bin", "node"))
			script := touch(t, filepath.Join(dir, "main.js"))

			// a stale variable is ignored in favour of the helper
			b, runner := newTestBuilder(t, ctrl, service.WithHost(host(tt.goos, map[string]string{
				service.NodePathEnv: filepath.Join(dir, "missing", "node"),
			})))

			var helperScript string
			cmd := mock.NewMockCommand(ctrl)
			runner.EXPECT().Command(tt.exe, gomock.Any()).DoAndReturn(func(_ string, args ...string) platform.Command {
				require.Len(t, args, 1)
				helperScript = args[0]
				return cmd
			})
			cmd.EXPECT().Execute(gomock.Any()).Return(nil)
			cmd.EXPECT().Stdout().Return(node + "\n")
			cmd.EXPECT().Destroy().Times(1)

			d, err := b.WithAppiumJS(script).Build(context.Background())
			require.NoError(t, err)
			assert.Equal(t, node, d.Executable)
			assert.Equal(t, "getExe.js", filepath.Base(helperScript))
		})
	}
}

func TestResolveNode_HelperFindsNothing(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
	}{
		{"blank output", "\n"},
		{"missing path", "/definitely/not/here/node\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			script := touch(t, filepath.Join(t.TempDir(), "main.js"))

			b, runner := newTestBuilder(t, ctrl)
			expectCommand(ctrl, runner, tt.stdout, "node", gomock.Any())

			_, err := b.WithAppiumJS(script).Build(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrNotFound)
			assert.NotErrorIs(t, err, service.ErrExecution)

			var lookupErr *service.LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.Equal(t, tt.stdout, lookupErr.Output)
		})
	}
}

func TestResolveNode_HelperCannotRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	script := touch(t, filepath.Join(t.TempDir(), "main.js"))
	spawnErr := errors.New("exec: \"node\": executable file not found in $PATH")

	b, runner := newTestBuilder(t, ctrl)
	cmd := mock.NewMockCommand(ctrl)
	runner.EXPECT().Command("node", gomock.Any()).Return(cmd)
	cmd.EXPECT().Execute(gomock.Any()).Return(spawnErr)
	cmd.EXPECT().Destroy().Times(1)

	_, err := b.WithAppiumJS(script).Build(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrExecution)
	assert.ErrorIs(t, err, spawnErr)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

// ── entry script resolution ───────────────────────────────────────────────────

func TestCheckAppiumJS_MissingOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := touch(t, filepath.Join(t.TempDir(), "node"))
	missing := filepath.Join(t.TempDir(), "nope", "main.js")

	b, _ := newTestBuilder(t, ctrl)
	_, err := b.WithNodeExecutable(node).WithAppiumJS(missing).Build(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidInstance)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}

func TestCheckAppiumJS_FromEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "appium", "bin", "appium.js"))

	b, _ := newTestBuilder(t, ctrl, service.WithHost(host("linux", map[string]string{
		service.AppiumPathEnv: "  " + script + "  ",
	})))

	d, err := b.WithNodeExecutable(node).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, script, d.Args[0])
}

func TestCheckAppiumJS_EnvironmentPointsNowhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))

	// no fallback to the npm lookup: the runner has no expectations
	b, _ := newTestBuilder(t, ctrl, service.WithHost(host("linux", map[string]string{
		service.AppiumPathEnv: filepath.Join(dir, "missing.js"),
	})))

	_, err := b.WithNodeExecutable(node).Build(context.Background())
	assert.ErrorIs(t, err, service.ErrInvalidInstance)
}

func TestFindAppium_Layouts(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		expect string
	}{
		{"current layout", []string{"appium/build/lib/main.js"}, "appium/build/lib/main.js"},
		{"old layout", []string{"appium/bin/appium.js"}, "appium/bin/appium.js"},
		{"old layout wins when both exist", []string{"appium/bin/appium.js", "appium/build/lib/main.js"}, "appium/bin/appium.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			root := t.TempDir()
			node := touch(t, filepath.Join(t.TempDir(), "node"))
			for _, f := range tt.files {
				touch(t, filepath.Join(root, filepath.FromSlash(f)))
			}

			b, runner := newTestBuilder(t, ctrl)
			expectCommand(ctrl, runner, root+"\n", "bash", "-l", gomock.Any())

			d, err := b.WithNodeExecutable(node).Build(context.Background())
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, filepath.FromSlash(tt.expect)), d.Args[0])
		})
	}
}

func TestFindAppium_Windows(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	node := touch(t, filepath.Join(t.TempDir(), "node.exe"))
	script := touch(t, filepath.Join(root, "appium", "build", "lib", "main.js"))

	b, runner := newTestBuilder(t, ctrl, service.WithHost(host("windows", nil)))
	expectCommand(ctrl, runner, root+"\r\n", "cmd.exe", "/C", "npm root -g")

	d, err := b.WithNodeExecutable(node).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, script, d.Args[0])
}

func TestFindAppium_NotInstalled(t *testing.T) {
	tests := []struct {
		name      string
		files     []string
		searchDir string
	}{
		{"no appium package", []string{"other/package.json"}, "appium"},
		{"appium package without entry script", []string{"appium/package.json"}, "appium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			root := t.TempDir()
			node := touch(t, filepath.Join(t.TempDir(), "node"))
			for _, f := range tt.files {
				touch(t, filepath.Join(root, filepath.FromSlash(f)))
			}

			b, runner := newTestBuilder(t, ctrl)
			expectCommand(ctrl, runner, root+"\n", "bash", "-l", gomock.Any())

			_, err := b.WithNodeExecutable(node).Build(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrNotFound)

			searchDir := filepath.Join(root, tt.searchDir)
			assert.Contains(t, err.Error(), searchDir)
			assert.Contains(t, err.Error(), filepath.Join("bin", "appium.js"))
			assert.Contains(t, err.Error(), filepath.Join("build", "lib", "main.js"))

			var lookupErr *service.LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.Equal(t, searchDir, lookupErr.SearchDir)
		})
	}
}

func TestFindAppium_LookupCannotRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := touch(t, filepath.Join(t.TempDir(), "node"))
	spawnErr := errors.New("exec: \"bash\": executable file not found in $PATH")

	b, runner := newTestBuilder(t, ctrl)
	cmd := mock.NewMockCommand(ctrl)
	runner.EXPECT().Command("bash", "-l", gomock.Any()).Return(cmd)
	cmd.EXPECT().Execute(gomock.Any()).Return(spawnErr)
	cmd.EXPECT().Destroy().Times(1)

	_, err := b.WithNodeExecutable(node).Build(context.Background())
	assert.ErrorIs(t, err, service.ErrExecution)
	assert.ErrorIs(t, err, spawnErr)
}

func TestFindAppium_ResultIsReused(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	node := touch(t, filepath.Join(t.TempDir(), "node"))
	touch(t, filepath.Join(root, "appium", "build", "lib", "main.js"))

	b, runner := newTestBuilder(t, ctrl)
	// exactly one lookup for two builds
	expectCommand(ctrl, runner, root, "bash", "-l", gomock.Any())

	b.WithNodeExecutable(node)
	first, err := b.Build(context.Background())
	require.NoError(t, err)
	second, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Args, second.Args)
}

// ── helper script lifetime ────────────────────────────────────────────────────

func TestClose_DeletesHelperScripts(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	touch(t, filepath.Join(root, "appium", "build", "lib", "main.js"))
	node := touch(t, filepath.Join(t.TempDir(), "bin", "node"))

	runner := mock.NewMockRunner(ctrl)
	b := service.NewServiceBuilder(
		service.WithHost(host("linux", nil)),
		service.WithRunner(runner),
		service.WithScriptsDir(t.TempDir()),
	)

	var scriptPaths []string
	respond := func(stdout string) func(string, ...string) platform.Command {
		return func(_ string, args ...string) platform.Command {
			scriptPaths = append(scriptPaths, args[len(args)-1])
			cmd := mock.NewMockCommand(ctrl)
			cmd.EXPECT().Execute(gomock.Any()).Return(nil)
			cmd.EXPECT().Stdout().Return(stdout)
			cmd.EXPECT().Destroy()
			return cmd
		}
	}
	runner.EXPECT().Command("node", gomock.Any()).DoAndReturn(respond(node))
	runner.EXPECT().Command("bash", "-l", gomock.Any()).DoAndReturn(respond(root))

	_, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, scriptPaths, 2)
	for _, p := range scriptPaths {
		_, err = os.Stat(p)
		require.NoError(t, err, "helper script should exist while the builder is alive")
	}

	require.NoError(t, b.Close())

	for _, p := range scriptPaths {
		_, err = os.Stat(p)
		assert.True(t, os.IsNotExist(err), "helper script %s should be deleted", p)
	}
	assert.NoError(t, b.Close())
}

// ── Start ─────────────────────────────────────────────────────────────────────

func TestStart_HandsDescriptorToLauncher(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	launcher := mock.NewMockLauncher(ctrl)
	running := mock.NewMockRunningService(ctrl)
	b, _ := newTestBuilder(t, ctrl, service.WithLauncher(launcher))
	b.WithNodeExecutable(node).WithAppiumJS(script).WithStartupTimeout(time.Minute)

	launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.LaunchDescriptor) (service.RunningService, error) {
			assert.Equal(t, node, d.Executable)
			assert.Equal(t, 4723, d.Port)
			assert.Equal(t, time.Minute, d.StartupTimeout)
			assert.Equal(t, script, d.Args[0])
			return running, nil
		})
	running.EXPECT().URL().Return("http://127.0.0.1:4723/").AnyTimes()
	running.EXPECT().PID().Return(42).AnyTimes()

	svc, err := b.Start(context.Background())
	require.NoError(t, err)
	assert.Same(t, running, svc)
}

func TestStart_LauncherFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	node := touch(t, filepath.Join(dir, "node"))
	script := touch(t, filepath.Join(dir, "main.js"))

	launcher := mock.NewMockLauncher(ctrl)
	b, _ := newTestBuilder(t, ctrl, service.WithLauncher(launcher))
	b.WithNodeExecutable(node).WithAppiumJS(script)

	launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	svc, err := b.Start(context.Background())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStart_NoLauncher(t *testing.T) {
	ctrl := gomock.NewController(t)
	b, _ := newTestBuilder(t, ctrl)

	svc, err := b.Start(context.Background())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, service.ErrNoLauncher)
}
