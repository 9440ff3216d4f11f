package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-appium-service/internal/app"
	"github.com/MKhiriev/go-appium-service/internal/platform"
	"github.com/MKhiriev/go-appium-service/internal/scripts"
)

const appiumFolder = "appium"

var (
	// appiumNodeMaskOld is the entry script of servers up to 1.4.x.
	appiumNodeMaskOld = filepath.Join("bin", "appium.js")
	// appiumNodeMask is the entry script of servers 1.5.x and later.
	appiumNodeMask = filepath.Join("build", "lib", "main.js")
)

// LookupError describes a lookup that ran but found nothing usable.
// It is wrapped by ErrNotFound errors.
type LookupError struct {
	// Output is the raw standard output of the helper command.
	Output string
	// SearchDir is the directory that was searched, if one was found.
	SearchDir string
	// Candidates are the relative paths tried inside SearchDir.
	Candidates []string
}

func (e *LookupError) Error() string {
	var sb strings.Builder

	if len(e.Candidates) > 0 {
		sb.WriteString("could not find file neither ")
		sb.WriteString(strings.Join(e.Candidates, " nor "))
		if e.SearchDir != "" {
			fmt.Fprintf(&sb, " in the %s directory", e.SearchDir)
		} else {
			sb.WriteString(" in the global npm package root")
		}
		sb.WriteString("; ")
	}
	fmt.Fprintf(&sb, "helper output: %q", e.Output)

	return sb.String()
}

// checkAppiumJS returns the server entry script and remembers it for
// subsequent builds.
//
// Order: the explicit override, then APPIUM_BINARY_PATH, then a lookup in
// the global npm package root. Configured paths must exist.
func (b *ServiceBuilder) checkAppiumJS(ctx context.Context) (string, error) {
	if b.appiumJS != "" {
		if err := validateNodeStructure(b.appiumJS); err != nil {
			return "", err
		}
		return b.appiumJS, nil
	}

	if p := b.host.Lookup(AppiumPathEnv); p != "" {
		if err := validateNodeStructure(p); err != nil {
			return "", err
		}
		b.appiumJS = p
		return p, nil
	}

	p, err := b.findAppiumInFileSystem(ctx)
	if err != nil {
		return "", err
	}

	b.appiumJS = p
	return p, nil
}

func validateNodeStructure(path string) error {
	abs := absPath(path)
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %s: %s: %w", ErrInvalidInstance, app.MsgInvalidAppiumNode, abs, err)
	}
	return nil
}

// findAppiumInFileSystem asks npm for its global package root and looks for
// an appium package with either the old or the current layout in it.
func (b *ServiceBuilder) findAppiumInFileSystem(ctx context.Context) (string, error) {
	cmd, err := b.npmRootCommand()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExecution, app.MsgNpmRootLookupFailed, err)
	}
	defer cmd.Destroy()

	if err = cmd.Execute(ctx); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExecution, app.MsgNpmRootLookupFailed, err)
	}

	output := cmd.Stdout()
	lookupErr := &LookupError{
		Output:     output,
		Candidates: []string{appiumNodeMaskOld, appiumNodeMask},
	}

	root := strings.TrimSpace(output)
	if root == "" {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, app.MsgAppiumNotInstalled, lookupErr)
	}

	appiumDir := filepath.Join(root, appiumFolder)
	lookupErr.SearchDir = appiumDir
	if !exists(appiumDir) {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, app.MsgAppiumNotInstalled, lookupErr)
	}

	for _, mask := range lookupErr.Candidates {
		candidate := filepath.Join(appiumDir, mask)
		if exists(candidate) {
			b.logger.Debug().Str("path", candidate).Msg("appium found in the global npm root")
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s: %w", ErrNotFound, app.MsgAppiumNotInstalled, lookupErr)
}

func (b *ServiceBuilder) npmRootCommand() (platform.Command, error) {
	if b.host.IsWindows() {
		return b.runner.Command("cmd.exe", "/C", "npm root -g"), nil
	}

	script, err := b.scripts.Path(scripts.DefaultNodeRootUnix)
	if err != nil {
		return nil, err
	}
	return b.runner.Command("bash", "-l", script), nil
}
