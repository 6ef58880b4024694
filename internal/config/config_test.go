package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"band-practice-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{
		"HTTP_PORT", "ENV", "CORS_ALLOWED_ORIGINS", "STORE", "SEED_FILE",
		"DB_DSN", "DB_AUTO_MIGRATE", "CLEANUP_ENABLED", "CLEANUP_SCHEDULE", "CLEANUP_TIMEZONE", "CLEANUP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.Cleanup.Enabled)
	assert.Equal(t, "0 2 * * *", cfg.Cleanup.Schedule)
	assert.Equal(t, time.Minute, cfg.Cleanup.Timeout)

	loc, err := cfg.Cleanup.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORE", "Memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("CLEANUP_ENABLED", "false")
	t.Setenv("CLEANUP_TIMEZONE", "UTC")
	t.Setenv("CLEANUP_TIMEOUT", "not-a-duration")

	cfg, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.False(t, cfg.Cleanup.Enabled)
	assert.Equal(t, time.Minute, cfg.Cleanup.Timeout)

	loc, err := cfg.Cleanup.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORE", "mongo")

	_, err := Load(logger.NewNop())
	assert.Error(t, err)
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CLEANUP_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load(logger.NewNop())
	assert.Error(t, err)
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "# local overrides\nexport SEED_FILE=./fixtures.yaml\nHTTP_PORT=9090 # api\nCLEANUP_SCHEDULE=\"30 3 * * *\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DOTENV_PATH", path)
	t.Setenv("HTTP_PORT", "7070")
	// Keys set by the .env file must not leak into later tests.
	t.Setenv("SEED_FILE", "")
	os.Unsetenv("SEED_FILE")
	t.Setenv("CLEANUP_SCHEDULE", "")
	os.Unsetenv("CLEANUP_SCHEDULE")

	cfg, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "./fixtures.yaml", cfg.SeedFile)
	assert.Equal(t, "30 3 * * *", cfg.Cleanup.Schedule)
}

func TestParseDotEnvLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{line: "A=1", key: "A", value: "1", ok: true},
		{line: "  A = spaced ", key: "A", value: "spaced", ok: true},
		{line: "export A=exported", key: "A", value: "exported", ok: true},
		{line: `A="quoted # not comment"`, key: "A", value: "quoted # not comment", ok: true},
		{line: "A='single'", key: "A", value: "single", ok: true},
		{line: "A=value # comment", key: "A", value: "value", ok: true},
		{line: "A=a#b", key: "A", value: "a#b", ok: true},
		{line: "A=", key: "A", value: "", ok: true},
		{line: "# A=1", ok: false},
		{line: "=1", ok: false},
		{line: "no equals", ok: false},
	}

	for _, tc := range cases {
		key, value, ok := parseDotEnvLine(tc.line)
		assert.Equal(t, tc.ok, ok, tc.line)
		if tc.ok {
			assert.Equal(t, tc.key, key, tc.line)
			assert.Equal(t, tc.value, value, tc.line)
		}
	}
}

func TestReadDotEnvKeepsOrder(t *testing.T) {
	entries, err := readDotEnv(strings.NewReader("B=2\n\n# skip\nA=1\n"))
	require.NoError(t, err)
	assert.Equal(t, []dotenvEntry{{key: "B", value: "2"}, {key: "A", value: "1"}}, entries)
}

func TestGetDSN(t *testing.T) {
	assert.Equal(t, "postgres://x", DBConfig{DSN: "postgres://x"}.GetDSN())

	dsn := DBConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}.GetDSN()
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", dsn)
}
