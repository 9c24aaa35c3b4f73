package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/client"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/metrics"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/session"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/tui"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return client.ExitUsage
	}

	log := logger.NewClientLogger("stock-keeper", cfg.LogPath)
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("api_url", cfg.Adapter.APIURL).
		Msg("client started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		fmt.Fprintf(os.Stderr, "cannot open local storage: %v\n", err)
		return client.ExitFailure
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, session.NewManager(log), metrics.NewAuthMetrics(nil), log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintf(os.Stderr, "invalid API url: %v\n", err)
		return client.ExitUsage
	}

	services := service.NewClientServices(storages, serverAdapter, log)
	ui := tui.New(services.AuthService, os.Stdin, os.Stdout)

	app := client.NewApp(services, ui, cfg.Workers, buildInfo, os.Stdout, os.Stderr, log)
	serverAdapter.SetSessionExpiredHandler(app.SessionExpired)

	if err = app.Run(ctx, cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: "+tui.HumanizeError(err)))
	}
	return client.ExitCode(err)
}
