package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/moodtrail/backend/internal/config"
	"github.com/JonnyWalker81/moodtrail/backend/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create the moodtrail tables and indexes. Safe to run repeatedly.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadUnvalidated(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.URL == "" {
		return errors.New("database.url is required")
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	db, err := repository.Open(cmd.Context(), cfg.Database.URL, repository.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	log.Info("schema applied")
	return nil
}
