package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecRunner creates commands backed by os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner that spawns real processes.
func NewExecRunner() Runner {
	return ExecRunner{}
}

// Command implements [Runner].
func (ExecRunner) Command(name string, args ...string) Command {
	return &execCommand{name: name, args: args}
}

// execCommand is not safe for concurrent use.
type execCommand struct {
	name string
	args []string

	cmd    *exec.Cmd
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// Execute starts the process and waits for it to exit.
// A non-zero exit status is not an error as long as the process could be
// started: callers judge the outcome by the captured output.
func (c *execCommand) Execute(ctx context.Context) error {
	c.cmd = exec.CommandContext(ctx, c.name, c.args...)
	c.cmd.Stdout = &c.stdout
	c.cmd.Stderr = &c.stderr

	if err := c.cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandStart, c, err)
	}

	if err := c.cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrCommandWait, c, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s: %w", ErrCommandWait, c, err)
		}
	}

	return nil
}

func (c *execCommand) Stdout() string {
	return c.stdout.String()
}

func (c *execCommand) Destroy() {
	if c.cmd == nil || c.cmd.Process == nil {
		return
	}
	if c.cmd.ProcessState == nil {
		_ = c.cmd.Process.Kill()
	}
	_ = c.cmd.Process.Release()
}

func (c *execCommand) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}
