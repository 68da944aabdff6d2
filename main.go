package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"GO-janken/internal/archive"
	"GO-janken/internal/completion"
	"GO-janken/internal/config"
	"GO-janken/internal/janken"
	"GO-janken/internal/logging"
	"GO-janken/internal/proposer"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./config.yaml)")
	flag.Parse()

	loader := config.NewLoader()
	cfg, err := loader.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Pretty)
	loader.Watch(func(next *config.Config, err error) {
		if err != nil {
			logger.Warn().Err(err).Msg("ignoring invalid config change")
			return
		}
		logging.SetLevel(next.Log.Level)
		logger.Info().Str("level", next.Log.Level).Msg("log level updated")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	completer, closeCompleter, err := completion.New(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create completion backend")
	}
	defer closeCompleter()

	var recorder janken.Recorder
	if cfg.Archive.Enabled {
		recorder, err = archive.NewSupabase(cfg.Archive.URL, cfg.Archive.Key, cfg.Archive.Table)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create round archive")
		}
		fmt.Println("✅ Successfully connected to Supabase!")
	}

	p := proposer.New(
		proposer.NewModelStrategy(completer),
		proposer.NewRandomStrategy(nil),
		cfg.LLM.Timeout,
		logger,
	)
	match := janken.NewMatch(p, recorder, logger)

	logger.Info().
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Str("match_id", match.ID.String()).
		Msg("match started")

	if err := runConsole(ctx, os.Stdin, os.Stdout, match); err != nil {
		logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("round failed")
		closeCompleter()
		os.Exit(1)
	}
}
