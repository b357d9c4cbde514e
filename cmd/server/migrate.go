package main

import (
	"errors"

	"github.com/spf13/cobra"

	"promptserver/internal/platform/migrations"
	"promptserver/internal/platform/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Create every table and index in DATABASE_URL. Statements are idempotent,
so running migrate against an up-to-date database is a no-op.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.URL == "" {
			return errors.New("DATABASE_URL is required for migrate")
		}

		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Apply(ctx, db); err != nil {
			return err
		}
		log.Info("schema applied", "statements", migrations.Count())
		return nil
	},
}
