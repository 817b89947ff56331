package game

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvCode       = "DUSKCRAWL_CODE"
	EnvPreset     = "DUSKCRAWL_PRESET"
	EnvViewRadius = "DUSKCRAWL_VIEW_RADIUS"
)

// Config holds game configuration options.
type Config struct {
	// Code is the four-character game code the level is generated from.
	// An empty code means a random one will be generated.
	Code string

	// Preset names a level layout from presets.json. Empty selects the
	// default preset.
	Preset string

	// ViewRadius overrides the preset's sight radius when positive.
	ViewRadius int

	// Override shows the whole map and every item.
	Override bool
}

// LoadConfig reads configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func LoadConfig() (Config, error) {
	cfg := Config{
		Code:   os.Getenv(EnvCode),
		Preset: os.Getenv(EnvPreset),
	}
	if v := os.Getenv(EnvViewRadius); v != "" {
		radius, err := strconv.Atoi(v)
		if err != nil || radius < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: want a non-negative integer", EnvViewRadius, v)
		}
		cfg.ViewRadius = radius
	}
	return cfg, nil
}
