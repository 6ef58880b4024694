package main

import (
	"fmt"

	"band-practice-go/internal/app"
	"band-practice-go/internal/config"
	"band-practice-go/pkg/logger"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "band-practice",
		Short:         "Band practice scheduler API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(serveCmd(), seedCmd(), cleanupCmd(), migrateCmd())
	return cmd
}

// bootstrap loads config and builds the application with the given overrides.
func bootstrap(log logger.Logger, mutate func(*config.Config)) (*app.App, error) {
	cfg, err := loadConfig(log, mutate)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, log)
}

// bootstrapOneShot is bootstrap for commands that change stored data and
// exit. They need a store that outlives the process.
func bootstrapOneShot(log logger.Logger, command string, mutate func(*config.Config)) (*app.App, error) {
	cfg, err := loadConfig(log, mutate)
	if err != nil {
		return nil, err
	}
	if err := requirePersistentStore(cfg, command); err != nil {
		return nil, err
	}
	return app.New(cfg, log)
}

func loadConfig(log logger.Logger, mutate func(*config.Config)) (config.Config, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return config.Config{}, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg, nil
}

func requirePersistentStore(cfg config.Config, command string) error {
	if cfg.Store == config.StoreMemory {
		return fmt.Errorf("%s: STORE=%s keeps data only for the life of the process; use STORE=%s", command, config.StoreMemory, config.StorePostgres)
	}
	return nil
}
