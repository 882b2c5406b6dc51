package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/daybook/backend/internal/config"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/repository/gormstore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	Long:  `Run gorm AutoMigrate against the postgres or sqlite database. Supabase schemas are managed in Supabase.`,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogger(cfg)

	if cfg.Database.Driver == config.DriverSupabase {
		return fmt.Errorf("migrate needs database.driver postgres or sqlite, got %q", cfg.Database.Driver)
	}

	db, err := gormstore.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := gormstore.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	logger.Info("database migrated", logger.String("driver", cfg.Database.Driver))
	return nil
}
