package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"promptserver/internal/platform/config"
	"promptserver/internal/platform/logger"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "promptserver",
	Short: "Prompt template management API",
	Long: `promptserver stores prompt templates with their versions, tags and
categories, and tracks favorites, likes and views for the dashboard.

Without a subcommand it starts the HTTP server, same as "promptserver serve".
Leaving DATABASE_URL, REDIS_URL and KAFKA_BROKERS empty runs everything in memory.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before the environment (default: .env)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// loadConfig resolves configuration and the process logger shared by every subcommand.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)
	return cfg, log, nil
}
