package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-appium-service/internal/logger"
	"github.com/MKhiriev/go-appium-service/internal/service"
)

// DefaultStopTimeout bounds the graceful shutdown of the server.
const DefaultStopTimeout = 10 * time.Second

type server struct {
	starter     Starter
	stopTimeout time.Duration
	signals     []os.Signal
	logger      *logger.Logger
}

// NewServer returns a Server that starts Appium through starter.
func NewServer(starter Starter, stopTimeout time.Duration, logger *logger.Logger) Server {
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}

	return &server{
		starter:     starter,
		stopTimeout: stopTimeout,
		signals:     []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT},
		logger:      logger,
	}
}

// Run starts the server and waits for it. A stop signal or the end of ctx
// shuts the server down and makes Run return the result of the shutdown;
// an exit of the server on its own is reported as ErrServerExited.
func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, s.signals...)
	defer stop()

	svc, err := s.starter.Start(ctx)
	if err != nil {
		return err
	}

	exited := make(chan error, 1)
	go func() { exited <- svc.Wait() }()

	select {
	case err = <-exited:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrServerExited, err)
		}
		return ErrServerExited
	case <-ctx.Done():
	}

	return s.shutdown(svc)
}

func (s *server) shutdown(svc service.RunningService) error {
	s.logger.Info().Int("pid", svc.PID()).Msg("shutting down appium server")

	ctx, cancel := context.WithTimeout(context.Background(), s.stopTimeout)
	defer cancel()

	if err := svc.Stop(ctx); err != nil {
		return fmt.Errorf("error stopping appium server: %w", err)
	}

	s.logger.Info().Msg("appium server shut down gracefully")
	return nil
}
