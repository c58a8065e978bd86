package main

import (
	"os"
	"time"

	"Fynd-Backend/cmd/config"
	migration "Fynd-Backend/cmd/database/migrate"
	"Fynd-Backend/internal/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migration")
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("Starting Fynd backend")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
