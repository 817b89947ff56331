// Package main is the entry point for Duskcrawl.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/duskcrawl/internal/dungeon"
	"github.com/samdwyer/duskcrawl/internal/game"
	"github.com/samdwyer/duskcrawl/internal/gamedata"
	"github.com/samdwyer/duskcrawl/internal/logger"
	"github.com/samdwyer/duskcrawl/internal/telemetry"
	"github.com/samdwyer/duskcrawl/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DUSKCRAWL_API_KEY and DUSKCRAWL_* available
	envErr := godotenv.Load()

	logger.Init()
	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.Debugf(".env file not loaded: %v", envErr)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Log.Fatalf("Invalid configuration: %v", err)
	}

	code := flag.String("code", cfg.Code, "four-character game code (random when empty)")
	preset := flag.String("preset", cfg.Preset, "level preset from presets.json")
	dump := flag.Bool("dump", false, "print the level map and exit")
	override := flag.Bool("override", false, "reveal the whole map and every item")
	flag.Parse()

	cfg.Code = *code
	cfg.Preset = *preset
	cfg.Override = *override

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	if *dump {
		if err := dumpLevel(ctx, cfg); err != nil {
			logger.Log.Fatalf("Failed to generate level: %v", err)
		}
		return
	}

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.Warnf("Telemetry setup failed, running without observability: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.Errorf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// The terminal UI owns stderr from here on.
	if os.Getenv("LOG_FILE") == "" {
		logger.SetOutput(io.Discard)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		logger.Log.Fatalf("Failed to open terminal: %v", err)
	}

	g, err := game.New(cfg, screen)
	if err != nil {
		screen.Close()
		logger.Log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		logger.Log.Fatalf("Game error: %v", err)
	}
}

// dumpLevel prints the walkability map of a level, top row first.
func dumpLevel(ctx context.Context, cfg game.Config) error {
	if cfg.Code == "" {
		return fmt.Errorf("-dump needs a -code")
	}
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return err
	}
	preset := presets.GetByID(cfg.Preset)
	if preset == nil {
		return fmt.Errorf("unknown preset %q", cfg.Preset)
	}
	params, err := preset.Params(cfg.Code)
	if err != nil {
		return err
	}
	d, err := dungeon.New(ctx, params)
	if err != nil {
		return err
	}

	glyphs := d.Glyphs()
	fmt.Fprintln(os.Stdout, d.String())
	fmt.Fprintf(os.Stdout, "entrance %v  exit %v  glyphs %d %d  lights %d\n",
		d.Entrance(), d.Exit(), glyphs[0], glyphs[1], len(d.Lights()))
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_DUSKCRAWL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUSKCRAWL_DATASET")
	if dataset == "" {
		dataset = "duskcrawl" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
