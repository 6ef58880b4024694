package main

import (
	"context"
	"fmt"
	"time"

	"band-practice-go/internal/config"
	"band-practice-go/internal/seed"
	"band-practice-go/pkg/logger"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all members and practices with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewFromEnv()

			application, err := bootstrapOneShot(log, "seed", func(cfg *config.Config) {
				cfg.Cleanup.Enabled = false
				if file == "" {
					file = cfg.SeedFile
				}
			})
			if err != nil {
				return err
			}
			defer application.Close(context.Background())

			fixtures := seed.Default()
			if file != "" {
				if fixtures, err = seed.LoadFile(file); err != nil {
					return err
				}
				log.Info("seed: loaded fixtures", "path", file)
			}

			summary, err := application.Seeder.Run(cmd.Context(), fixtures, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d members and %d practices\n", summary.Members, summary.Practices)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixtures file (defaults to SEED_FILE or built-in sample band)")
	return cmd
}
