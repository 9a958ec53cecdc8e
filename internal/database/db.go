// Package database handles the connection to the SQLite file, schema
// provisioning, and all SQL access to genes, variants, and samples
package database

import (
	"context"
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite"
)

// FileName is the database file created in the working directory
const FileName = "genomic_variants.db"

// InitDB opens the database file in the working directory and provisions the schema.
// The returned handle is the only connection for the session; callers close it.
func InitDB(ctx context.Context) (*sql.DB, error) {
	db, err := Open(ctx, FileName)
	if err != nil {
		return nil, err
	}

	if err := Provision(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}

	slog.Info("database ready", "path", FileName)
	return db, nil
}

// Open connects to the SQLite database at dsn without touching the schema.
// Use ":memory:" for a throwaway database; the pool is pinned to a single
// connection so an in-memory database lives as long as the handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, &ConnectionError{Path: dsn, Err: err}
	}

	// One connection for the whole session
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, &ConnectionError{Path: dsn, Err: err}
	}

	// Foreign keys are off by default in SQLite
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		slog.Error("failed to enable foreign keys", "error", err)
		closeQuietly(db)
		return nil, &ConnectionError{Path: dsn, Err: err}
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		slog.Error("failed to set busy timeout", "error", err)
		closeQuietly(db)
		return nil, &ConnectionError{Path: dsn, Err: err}
	}

	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
