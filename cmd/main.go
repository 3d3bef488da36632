// Package main provides the API to manage users, offers, messages and reviews.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/piwegro/piwegro-api/cmd/httpserver"
	"github.com/piwegro/piwegro-api/internal/middleware"
	"github.com/piwegro/piwegro-api/pkg/configpkg"
	"github.com/piwegro/piwegro-api/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("MARKETPLACE API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
