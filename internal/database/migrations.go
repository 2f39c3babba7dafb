// file: internal/database/migrations.go
// version: 2.0.0
// guid: 9a8b7c6d-5e4f-3d2c-1b0a-9f8e7d6c5b4a

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jdfalk/wordbook/internal/logger"
)

// MigrationFunc represents a migration operation
type MigrationFunc func(ctx context.Context, store Store) error

// Migration represents a single database migration
type Migration struct {
	Version     int
	Description string
	Up          MigrationFunc
}

// DatabaseVersion stores the current schema version
type DatabaseVersion struct {
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Versioned is implemented by stores that track a schema version. Stores
// without it (MongoDB) create their indexes on open and skip migrations.
type Versioned interface {
	SchemaVersion(ctx context.Context) (int, error)
	SetSchemaVersion(ctx context.Context, version int) error
}

// migrations is the ordered list of all migrations
var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema with users, words and user words",
		Up:          migration001Up,
	},
	{
		Version:     2,
		Description: "Reconcile word popularity with user word links",
		Up:          migration002Up,
	},
}

// LatestVersion is the schema version after all migrations ran.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations applies all pending migrations
func RunMigrations(ctx context.Context, store Store) error {
	log := logger.New("migrations")

	v, ok := store.(Versioned)
	if !ok {
		log.Debug("store does not track a schema version, skipping migrations")
		return nil
	}

	currentVersion, err := v.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	pending := []Migration{}
	for _, m := range migrations {
		if m.Version > currentVersion {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		log.Debug("database is up to date", "version", currentVersion)
		return nil
	}

	log.Info("applying migrations", "from", currentVersion, "count", len(pending))
	for _, m := range pending {
		log.Info("applying migration", "version", m.Version, "description", m.Description)
		if err := m.Up(ctx, store); err != nil {
			return fmt.Errorf("migration %d failed: %w", m.Version, err)
		}
		if err := v.SetSchemaVersion(ctx, m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	log.Info("migrations complete", "version", pending[len(pending)-1].Version)
	return nil
}

// Migration implementations

// migration001Up marks the baseline. Tables and indexes are created when the
// store is opened.
func migration001Up(ctx context.Context, store Store) error {
	return nil
}

// migration002Up repairs counters written before removal and registration
// were applied as one unit.
func migration002Up(ctx context.Context, store Store) error {
	drifts, err := ReconcilePopularity(ctx, store, true)
	if err != nil {
		return err
	}
	if len(drifts) > 0 {
		logger.New("migrations").Warn("repaired word popularity", "words", len(drifts))
	}
	return nil
}
