package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-appium-service/internal/app"
	"github.com/MKhiriev/go-appium-service/internal/scripts"
)

const (
	nodeExecutableName        = "node"
	nodeExecutableNameWindows = "node.exe"
)

// resolveNodeExecutable returns the Node.js binary to run the server with.
//
// Order: the explicit override, then NODE_BINARY_PATH if it points at an
// existing file, then whatever node on PATH reports as its own location.
func (b *ServiceBuilder) resolveNodeExecutable(ctx context.Context) (string, error) {
	if b.nodeExecutable != "" {
		return b.nodeExecutable, nil
	}

	if p := b.host.Lookup(NodePathEnv); p != "" {
		if exists(p) {
			return p, nil
		}
		b.logger.Debug().Str("path", p).Msg(NodePathEnv + " points at a missing file, ignoring it")
	}

	script, err := b.scripts.Path(scripts.NodeExecutable)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExecution, app.MsgNodeNotInstalled, err)
	}

	name := nodeExecutableName
	if b.host.IsWindows() {
		name = nodeExecutableNameWindows
	}

	cmd := b.runner.Command(name, script)
	defer cmd.Destroy()

	if err = cmd.Execute(ctx); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExecution, app.MsgNodeNotInstalled, err)
	}

	output := cmd.Stdout()
	path := strings.TrimSpace(output)
	if path == "" || !exists(path) {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, app.MsgDefaultNodeNotFound, &LookupError{Output: output})
	}

	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
