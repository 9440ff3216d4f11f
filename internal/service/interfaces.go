package service

import (
	"context"

	"github.com/MKhiriev/go-appium-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/launcher_mock.go -package=mock

// Launcher turns a resolved launch descriptor into a running server.
// Process supervision (readiness checks, restarts) is the launcher's
// business, not the builder's.
type Launcher interface {
	Launch(ctx context.Context, descriptor models.LaunchDescriptor) (RunningService, error)
}

// RunningService is a handle to a launched server.
type RunningService interface {
	// URL is the base URL clients connect to.
	URL() string
	// PID is the operating system process id of the server.
	PID() int
	// Stop asks the server to shut down and waits for it, escalating to a
	// forced kill when ctx is done.
	Stop(ctx context.Context) error
	// Wait blocks until the server exits.
	Wait() error
}
