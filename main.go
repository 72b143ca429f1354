package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"estoquebot/internal/api"
	"estoquebot/internal/bot"
	"estoquebot/internal/config"
	"estoquebot/internal/database"
	"estoquebot/internal/llm"
	"estoquebot/internal/migrations"
	"estoquebot/internal/seed"
	"estoquebot/internal/session"
	"estoquebot/internal/store"
)

func newLogger(format string) zerolog.Logger {
	if format == "json" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.LogFormat)

	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)
	seed.LoadCatalog(db, cfg.CatalogCSV)

	client := llm.New(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.Model)
	responder := bot.NewResponder(
		llm.NewLegacyClient(client),
		session.New(db, cfg.HistoryLimit),
		store.New(db),
		logger,
	)

	wa, err := bot.NewWhatsApp(cfg.WhatsAppDSN, responder, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("whatsapp setup failed")
	}
	if err := wa.Connect(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("whatsapp connect failed")
	}
	logger.Info().Msg("bot connected")

	go func() {
		handler := api.New(db)
		logger.Info().Str("port", cfg.HTTPPort).Msg("admin API listening")
		if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
			logger.Error().Err(err).Msg("admin API stopped")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	wa.Disconnect()
}
