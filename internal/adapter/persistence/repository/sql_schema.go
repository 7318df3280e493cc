package repository

import (
	"context"
	"fmt"

	"capquote/internal/config"
)

// sqlSchemas holds the DDL per driver. Both drivers accept "?" placeholders,
// so only the DDL and the insert-if-absent verb differ.
var sqlSchemas = map[string][]string{
	config.DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS quote_threads (
			id          TEXT PRIMARY KEY,
			revision    INTEGER NOT NULL,
			payload     TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quote_payments (
			id                    TEXT PRIMARY KEY,
			thread_id             TEXT NOT NULL,
			version_id            TEXT NOT NULL,
			amount                REAL NOT NULL,
			status                TEXT NOT NULL,
			date                  TEXT NOT NULL,
			provider_payload_raw  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_payments_thread ON quote_payments(thread_id, date)`,
	},
	config.DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS quote_threads (
			id          VARCHAR(191) PRIMARY KEY,
			revision    BIGINT NOT NULL,
			payload     LONGTEXT NOT NULL,
			created_at  VARCHAR(40) NOT NULL,
			updated_at  VARCHAR(40) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quote_payments (
			id                    VARCHAR(191) PRIMARY KEY,
			thread_id             VARCHAR(191) NOT NULL,
			version_id            VARCHAR(64) NOT NULL,
			amount                DOUBLE NOT NULL,
			status                VARCHAR(32) NOT NULL,
			date                  VARCHAR(40) NOT NULL,
			provider_payload_raw  LONGTEXT,
			INDEX idx_quote_payments_thread (thread_id, date)
		)`,
	},
}

var insertIgnore = map[string]string{
	config.DriverSQLite: "INSERT OR IGNORE",
	config.DriverMySQL:  "INSERT IGNORE",
}

// MigrateSQL creates the quote tables for the given driver.
func MigrateSQL(ctx context.Context, db execer, driver string) error {
	stmts, ok := sqlSchemas[driver]
	if !ok {
		return fmt.Errorf("unsupported sql driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate %s schema: %w", driver, err)
		}
	}
	return nil
}
