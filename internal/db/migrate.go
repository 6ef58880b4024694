package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"band-practice-go/pkg/logger"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

type schemaMigration struct {
	Filename  string    `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// Migrate applies the embedded migrations that schema_migrations has not
// recorded yet, in filename order. Each file runs in its own transaction
// together with its bookkeeping row.
func Migrate(db *gorm.DB, log logger.Logger) error {
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	if err := db.Model(&schemaMigration{}).Pluck("filename", &applied).Error; err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}

	pending, err := pendingMigrations(migrationsFS, migrationsDir, applied)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		log.Debug("db: schema up to date")
		return nil
	}

	for _, name := range pending {
		contents, err := fs.ReadFile(migrationsFS, path.Join(migrationsDir, name))
		if err != nil {
			return err
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if sql := strings.TrimSpace(string(contents)); sql != "" {
				if err := tx.Exec(sql).Error; err != nil {
					return err
				}
			}
			return tx.Create(&schemaMigration{Filename: name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Info("db: migration applied", "file", name)
	}

	return nil
}

// pendingMigrations lists the .sql files in dir that are not in applied,
// sorted by name.
func pendingMigrations(fsys fs.FS, dir string, applied []string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	done := make(map[string]struct{}, len(applied))
	for _, name := range applied {
		done[name] = struct{}{}
	}

	var pending []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}
		if _, ok := done[name]; !ok {
			pending = append(pending, name)
		}
	}
	sort.Strings(pending)
	return pending, nil
}
