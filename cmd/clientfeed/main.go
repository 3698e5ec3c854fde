// Package main provides the CLI entry point for clientfeed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clientfeed/internal/config"
	"clientfeed/internal/logging"
	"clientfeed/pkg/clientfeed"
	"clientfeed/pkg/clientfeed/output"
)

var (
	outputPath string
	sheetName  string
	workers    int
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clientfeed [input.xlsx]",
		Short: "Convert client spreadsheets to JSON records",
		Long: `clientfeed reads one row per client from a spreadsheet and writes one
normalized JSON record per line, ready for bulk ingestion.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet to read (default: first sheet)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Mapping goroutines (0: use CLIENTFEED_WORKERS)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if sheetName != "" {
		cfg.Sheet = sheetName
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := clientfeed.Options{
		Sheet:   cfg.Sheet,
		Workers: cfg.Workers,
		Logger:  logger,
	}

	records, stats, err := clientfeed.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if outputPath != "" {
		if err := output.WriteFile(outputPath, records); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := output.Write(os.Stdout, records); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	logger.Info("wrote records",
		zap.String("output", outputDescription()),
		zap.Int("records", stats.RecordsOut),
		zap.Int("sparseSkipped", stats.SparseSkipped))

	return nil
}

func outputDescription() string {
	if outputPath != "" {
		return outputPath
	}
	return "stdout"
}
