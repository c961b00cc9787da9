package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
	"github.com/MKhiriev/go-shop-admin/internal/client"
	"github.com/MKhiriev/go-shop-admin/internal/config"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/service"
	"github.com/MKhiriev/go-shop-admin/internal/store"
	"github.com/MKhiriev/go-shop-admin/internal/tui"
	"github.com/MKhiriev/go-shop-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("shop-admin", cfg.App.LogFile)
	log.Debug().
		Str("api", cfg.Adapter.HTTPAddress).
		Str("session_db", cfg.Storage.DB.DSN).
		Dur("persist_interval", cfg.Workers.PersistInterval).
		Str("order_transitions", cfg.App.OrderTransitions).
		Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(localStorage, serverAdapter, service.ClientServicesOptions{
		OrderTransitions: cfg.App.OrderTransitions,
		PersistInterval:  cfg.Workers.PersistInterval,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
