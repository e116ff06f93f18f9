package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpalmerr/rosterboard"
)

const (
	shutdownTimeout = 10 * time.Second
)

// serveCmd starts the RosterBoard server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the roster page server",
	Long: `Start the RosterBoard server.

The server will:
  - Load variables from the optional env file
  - Load configuration from the specified YAML file
  - Serve the roster page on the configured port

The server runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  rosterboard serve -c config.yaml
  rosterboard serve -c config.yaml --env-file .env`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	serveCmd.Flags().String("env-file", "", "dotenv file loaded before the config is parsed")
	_ = serveCmd.MarkFlagRequired("config")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	envFile, _ := cmd.Flags().GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, rb, err := loadBoard(configFile,
		rosterboard.WithLogger(logger),
		rosterboard.WithChangeCallback(func(e rosterboard.ChangeEvent) {
			logger.Info("roster changed",
				"session_id", e.SessionID,
				"kind", e.Kind.String(),
				"rows", e.Rows,
			)
		}),
	)
	if err != nil {
		return err
	}

	logger.Info("config loaded",
		"variant", cfg.Variant,
		"students", len(rb.Students()),
	)

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// start server - blocks until context cancelled
	errChan := make(chan error, 1)
	go func() {
		errChan <- rb.Start(ctx)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("shutdown complete")
		return nil

	case <-ctx.Done():
		// signal received, wait for graceful shutdown with timeout
		select {
		case err := <-errChan:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		case <-time.After(shutdownTimeout):
			logger.Warn("shutdown timed out",
				"timeout", shutdownTimeout.String(),
				"action", "forcing exit",
			)
			return nil
		}
	}
}
