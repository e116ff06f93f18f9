package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportCmd writes the seed roster as a spreadsheet.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the seed roster as an .xlsx file",
	Long: `Write the roster every new session starts with to an Excel workbook,
with the same columns the page shows.

Example:
  rosterboard export -c config.yaml -o roster.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	exportCmd.Flags().StringP("output", "o", "roster.xlsx", "output file")
	_ = exportCmd.MarkFlagRequired("config")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	configFile, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")

	_, rb, err := loadBoard(configFile)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := rb.WriteSpreadsheet(f); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	fmt.Printf("Wrote %d students to %s\n", len(rb.Students()), output)
	return nil
}
