package main

import (
	"context"
	"fmt"
	"time"

	"band-practice-go/internal/config"
	"band-practice-go/pkg/logger"
	"github.com/spf13/cobra"
)

func cleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete practices dated before today",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFromEnv()

			application, err := bootstrapOneShot(log, "cleanup", func(cfg *config.Config) {
				cfg.Cleanup.Enabled = false
			})
			if err != nil {
				return err
			}
			defer application.Close(context.Background())

			result, err := application.Cleanup.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired practice(s) at %s\n", result.DeletedCount, result.CleanedAt.Format(time.RFC3339))
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFromEnv()

			application, err := bootstrapOneShot(log, "migrate", func(cfg *config.Config) {
				cfg.Cleanup.Enabled = false
				cfg.DB.AutoMigrate = false
			})
			if err != nil {
				return err
			}
			defer application.Close(context.Background())

			return application.Migrate()
		},
	}
}
