package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"inkwell/config"
	"inkwell/database"
	"inkwell/mailer"
	"inkwell/site"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.DatabaseURL).Msg("failed to open database")
	}

	store := database.NewStore(db)
	s := site.New(store, mailer.New(cfg.Email), cfg.SecretKey)
	r := s.Router()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Msgf("Running on http://localhost%s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	// Block until a signal is received
	<-signals
	log.Info().Msg("Shutting down gracefully...")

	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("error closing database")
	}
}
