package main

import (
	"context"

	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/handler"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/server"
	"github.com/MKhiriev/go-user-signup/internal/service"
	"github.com/MKhiriev/go-user-signup/internal/store"
	"github.com/MKhiriev/go-user-signup/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-user-signup-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Stringer("build", buildInfo).Msg("starting signup server")

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("driver", cfg.Storage.DB.ResolveDriver()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
