// Package config resolves game settings from flags, the environment and an
// optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvPlayerName = "ADVENTURE_PLAYER_NAME"
	EnvLang       = "ADVENTURE_LANG"
	EnvColor      = "ADVENTURE_COLOR"
	EnvNoColor    = "NO_COLOR"
)

// DefaultPlayerName is used when no name is configured
const DefaultPlayerName = "Hero"

// ColorMode selects when output is styled
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Style only when writing to a terminal
	ColorAlways ColorMode = "always" // Always write escape codes
	ColorNever  ColorMode = "never"  // Plain text
)

// Config holds game configuration options.
type Config struct {
	PlayerName string
	Lang       string
	Color      ColorMode
}

// Load reads .env if present, then the environment, then command-line args.
// Later sources override earlier ones.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	return Parse(args, os.LookupEnv)
}

// Parse builds a Config from args and an environment lookup function.
func Parse(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		PlayerName: envOr(lookup, EnvPlayerName, DefaultPlayerName),
		Lang:       envOr(lookup, EnvLang, "en"),
		Color:      ColorMode(envOr(lookup, EnvColor, string(ColorAuto))),
	}
	if _, ok := lookup(EnvNoColor); ok {
		cfg.Color = ColorNever
	}

	fl := flag.NewFlagSet("darkcave", flag.ContinueOnError)
	fl.SetOutput(io.Discard)
	fl.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "name of the adventurer")
	fl.StringVar(&cfg.Lang, "lang", cfg.Lang, "language for game text (en, fr)")
	color := fl.String("color", string(cfg.Color), "when to use colors: auto, always or never")

	if err := fl.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if fl.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fl.Args(), " "))
	}
	cfg.Color = ColorMode(strings.ToLower(*color))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	c.PlayerName = strings.TrimSpace(c.PlayerName)
	if c.PlayerName == "" {
		return errors.New("player name must not be empty")
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}

	return nil
}

// envOr returns the value of key, or def when it is unset or blank.
func envOr(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
