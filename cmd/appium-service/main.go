package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-appium-service/internal/config"
	"github.com/MKhiriev/go-appium-service/internal/launcher"
	"github.com/MKhiriev/go-appium-service/internal/logger"
	"github.com/MKhiriev/go-appium-service/internal/platform"
	"github.com/MKhiriev/go-appium-service/internal/server"
	"github.com/MKhiriev/go-appium-service/internal/service"
	"github.com/MKhiriev/go-appium-service/internal/view"
	"github.com/MKhiriev/go-appium-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	view.PrintBuildInfo(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(platform.Default(), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(os.Stderr)
		return
	}

	log := logger.NewLogger("appium-service")
	if cfg != nil && cfg.Log.Console {
		log = logger.NewConsoleLogger("appium-service")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log, err = log.WithMinLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("appium service error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	builder := service.NewServiceBuilder(
		service.WithLogger(log.WithComponent("builder")),
		service.WithLauncher(launcher.NewExecLauncher(log)),
	)
	defer builder.Close()

	if _, err := cfg.Apply(builder); err != nil {
		return fmt.Errorf("error applying configs: %w", err)
	}

	if cfg.DryRun {
		descriptor, err := builder.Build(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(view.RenderLaunch(descriptor))
		return nil
	}

	return server.NewServer(builder, server.DefaultStopTimeout, log).Run(context.Background())
}
