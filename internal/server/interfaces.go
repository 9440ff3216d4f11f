package server

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-appium-service/internal/service"
)

// Server defines the lifecycle of a foreground Appium server.
type Server interface {
	// Run starts the server and blocks until it stops.
	Run(ctx context.Context) error
}

// Starter starts a server. It is implemented by *service.ServiceBuilder.
type Starter interface {
	Start(ctx context.Context) (service.RunningService, error)
}
