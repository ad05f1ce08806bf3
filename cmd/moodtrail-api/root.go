package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/moodtrail/backend/internal/config"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:          "moodtrail-api",
	Short:        "Moodtrail API server",
	Long:         `A REST API server for the Moodtrail mood, journal and activity tracker.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// newLogger builds the process logger from the log section and installs it
// as the default
func newLogger(cfg config.LogConfig) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: level, Format: cfg.Format})
	logger.SetDefault(log)
	return log, nil
}
