// Package main is the entry point for hexcrawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/hexcrawl/internal/config"
	"github.com/samdwyer/hexcrawl/internal/game"
	"github.com/samdwyer/hexcrawl/internal/gamedata"
	"github.com/samdwyer/hexcrawl/internal/geomorph"
	"github.com/samdwyer/hexcrawl/internal/logger"
	"github.com/samdwyer/hexcrawl/internal/telemetry"
	"github.com/samdwyer/hexcrawl/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs, closer, err := logger.Open(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		// Continue without telemetry - game still works
		logs.WithError(err).Warn("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logs.WithError(err).Warn("error shutting down telemetry")
			}
		}()
	}

	// Chunk templates are validated before anything is drawn so a broken
	// template is reported on a normal terminal.
	registry, err := geomorph.LoadRegistry(ctx, logs)
	if err != nil {
		logs.WithError(err).Error("invalid chunk data")
		log.Fatalf("Failed to load chunks: %v", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		log.Fatalf("Failed to load palette: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	g := game.New(screen, registry, palette, cfg, logs)
	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_HEXCRAWL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_HEXCRAWL_DATASET")
	if dataset == "" {
		dataset = "hexcrawl"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
