package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd validates a config file without starting the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a RosterBoard configuration file without starting the server.

This command parses the YAML, expands environment variables, and validates
all fields, including whether the seed students fit the chosen variant.
It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  rosterboard validate -c config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	validateCmd.Flags().String("env-file", "", "dotenv file loaded before the config is parsed")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, rb, err := loadBoard(configFile)
	if err != nil {
		return err
	}

	source := "configured"
	if len(cfg.Students) == 0 {
		source = "variant seed"
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Title:       %s\n", rb.Title())
	fmt.Printf("  Port:        %d\n", rb.Port())
	fmt.Printf("  Variant:     %s\n", rb.Variant())
	fmt.Printf("  Session TTL: %s\n", rb.SessionTTL())
	fmt.Printf("  Students:    %d (%s)\n", len(rb.Students()), source)

	return nil
}
