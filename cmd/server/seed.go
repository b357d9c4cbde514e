package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	categorystore "promptserver/internal/category/store"
	"promptserver/internal/platform/migrations"
	"promptserver/internal/platform/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the system categories",
	Long: `Insert the read-only system categories (programming, writing, marketing, ...)
that are missing from DATABASE_URL. Existing categories are left untouched.
In-memory servers seed themselves on start.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.URL == "" {
			return errors.New("DATABASE_URL is required for seed")
		}

		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migrations.Apply(ctx, db); err != nil {
			return err
		}
		created, err := categorystore.SeedSystemCategories(ctx, categorystore.NewPostgres(db), time.Now())
		if err != nil {
			return err
		}
		log.Info("system categories seeded", "created", created, "total", len(categorystore.SystemCategories))
		return nil
	},
}
