// Package sqlite provides a SQLite-backed implementation of the settings
// repository port. Only presentation preferences live here; conversation
// state never touches the database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/sonic-labs/sonic-backend/internal/core/domain"
	"github.com/sonic-labs/sonic-backend/internal/core/ports"
)

const (
	keyTheme              = "theme"
	keyOnboardingComplete = "onboardingComplete"
)

// Adapter implements the settings repository port for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.SettingsRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := a.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}
	return nil
}

// Load reads the persisted settings, falling back to defaults for any key
// that has never been saved.
func (a *Adapter) Load(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	rows, err := a.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return domain.Settings{}, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case keyTheme:
			if value == string(domain.ThemeDark) {
				settings.Theme = domain.ThemeDark
			} else {
				settings.Theme = domain.ThemeLight
			}
		case keyOnboardingComplete:
			done, err := strconv.ParseBool(value)
			if err == nil {
				settings.OnboardingComplete = done
			}
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to iterate settings: %w", err)
	}

	return settings, nil
}

// Save upserts both settings keys in one transaction.
func (a *Adapter) Save(ctx context.Context, s domain.Settings) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net: auto-rollback if we error before commit

	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value;
	`
	if _, err := tx.ExecContext(ctx, query, keyTheme, string(s.Theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, keyOnboardingComplete, strconv.FormatBool(s.OnboardingComplete)); err != nil {
		return fmt.Errorf("failed to save onboarding flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
