package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fitiplus/internal/client"
	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/internal/tui"
	"github.com/MKhiriev/fitiplus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}
	log := logger.NewClientLogger("fitiplus-client", cfg.App.LogFile)
	log.Info().Str("build", buildInfo.String()).Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	app.Start(ctx)

	var ui client.Client = tui.New(app.Services, app.Session, app.Router, buildInfo, log)
	runErr := ui.Run(ctx)

	if err = app.Close(); err != nil {
		log.Error().Err(err).Msg("error closing client app")
	}
	if runErr != nil && !errors.Is(runErr, tui.ErrUserQuit) {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
