package db

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/0002_practices.sql": {Data: []byte("CREATE TABLE practices ();")},
		"migrations/0001_members.sql":   {Data: []byte("CREATE TABLE members ();")},
		"migrations/0003_notes.sql":     {Data: []byte("")},
		"migrations/README.md":          {Data: []byte("docs")},
	}

	pending, err := pendingMigrations(fsys, "migrations", []string{"0001_members.sql"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_practices.sql", "0003_notes.sql"}, pending)
}

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	pending, err := pendingMigrations(migrationsFS, migrationsDir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_members.sql", "0002_practices.sql"}, pending)
}
