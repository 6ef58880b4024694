package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"band-practice-go/internal/config"
	"band-practice-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORE", config.StoreMemory)
	t.Setenv("CLEANUP_TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "critical")
}

func TestRequirePersistentStore(t *testing.T) {
	assert.NoError(t, requirePersistentStore(config.Config{Store: config.StorePostgres}, "seed"))

	err := requirePersistentStore(config.Config{Store: config.StoreMemory}, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed")
}

func TestOneShotCommandsRejectMemoryStore(t *testing.T) {
	for _, name := range []string{"seed", "cleanup", "migrate"} {
		t.Run(name, func(t *testing.T) {
			memoryEnv(t)

			var out bytes.Buffer
			cmd := rootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{name})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "STORE=memory")
			assert.NotContains(t, out.String(), "seeded")
			assert.NotContains(t, out.String(), "deleted")
		})
	}
}

func TestBootstrapAllowsMemoryStoreForServe(t *testing.T) {
	memoryEnv(t)
	t.Setenv("CLEANUP_ENABLED", "false")

	application, err := bootstrap(logger.NewNop(), nil)
	require.NoError(t, err)
	defer application.Close(context.Background())
	assert.NotNil(t, application.HTTPServer())
}
