package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/MKhiriev/go-appium-service/internal/logger"
)

// Process is a handle to a running server.
type Process struct {
	cmd    *exec.Cmd
	url    string
	logger *logger.Logger

	done chan struct{}
	err  error
}

func newProcess(cmd *exec.Cmd, url string, l *logger.Logger) *Process {
	p := &Process{
		cmd:    cmd,
		url:    url,
		logger: l,
		done:   make(chan struct{}),
	}

	go func() {
		p.err = cmd.Wait()
		close(p.done)
		p.logger.Info().Int("pid", p.PID()).Err(p.err).Msg("appium server exited")
	}()

	return p
}

// URL returns the base URL clients should use to reach the server.
func (p *Process) URL() string {
	return p.url
}

// PID returns the operating system process id.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the server exits and returns its exit error, if any.
// It may be called any number of times.
func (p *Process) Wait() error {
	<-p.done
	return p.err
}

// Done is closed when the server exits.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Stop asks the server to shut down and waits for it to exit. If ctx ends
// first the server is killed. Stopping an exited server is a no-op.
func (p *Process) Stop(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	default:
	}

	if err := interrupt(p.cmd.Process); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("%w: %w", ErrStop, err)
	}

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
	}

	p.logger.Warn().Int("pid", p.PID()).Msg("appium server did not stop in time, killing it")
	if err := kill(p.cmd.Process); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("%w: %w", ErrStop, err)
	}

	<-p.done
	return nil
}
