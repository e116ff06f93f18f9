package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/jpalmerr/rosterboard"
	"github.com/jpalmerr/rosterboard/config"
)

// newLogger creates the CLI logger: human-readable text on a terminal,
// JSON otherwise.
func newLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// loadEnvFile loads variables from a dotenv file without overriding the
// process environment. An empty path is a no-op.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// loadBoard reads the config file and builds a board from it.
func loadBoard(configFile string, extra ...rosterboard.Option) (*config.Config, *rosterboard.RosterBoard, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := config.BuildOptions(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build options: %w", err)
	}

	rb, err := rosterboard.New(append(opts, extra...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, rb, nil
}
