package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-shop-admin/internal/config"
	handler "github.com/MKhiriev/go-shop-admin/internal/handler/http"
	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/server"
	"github.com/MKhiriev/go-shop-admin/internal/stubapi"
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

	log := logger.NewLogger("shop-stub-api")
	cfg, err := config.GetStubConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("admin", cfg.AdminUser).
		Dur("token_duration", cfg.TokenDuration).
		Bool("seed", cfg.SeedDemoData).
		Msg("received configs")

	services, err := stubapi.NewServices(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	srv, err := server.NewServer(handler.NewHandler(services, log).Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
