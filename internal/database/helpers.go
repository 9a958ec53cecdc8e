package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "begin transaction", Err: err}
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit transaction", Err: err}
	}

	return nil
}

// constraintKind classifies a SQLite constraint failure.
// Returns 0 when err is not a constraint violation.
func constraintKind(err error) int {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return 0
	}

	code := se.Code()
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return sqlite3.SQLITE_CONSTRAINT_UNIQUE
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
	}

	// Primary result code only: fall back to the message
	if code&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := se.Error()
		switch {
		case strings.Contains(msg, "UNIQUE"):
			return sqlite3.SQLITE_CONSTRAINT_UNIQUE
		case strings.Contains(msg, "FOREIGN KEY"):
			return sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
		}
	}
	return 0
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	return constraintKind(err) == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// isForeignKeyViolation reports whether err is a FOREIGN KEY constraint failure
func isForeignKeyViolation(err error) bool {
	return constraintKind(err) == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

// rowExists reports whether table has a row whose idColumn equals id
func rowExists(ctx context.Context, tx *sql.Tx, table, idColumn string, id int) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx,
		"SELECT 1 FROM "+table+" WHERE "+idColumn+" = ?", id,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// requireRow returns a ReferentialError when the referenced row is missing
func requireRow(ctx context.Context, tx *sql.Tx, op, table, idColumn string, id int) error {
	ok, err := rowExists(ctx, tx, table, idColumn, id)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if !ok {
		return &ReferentialError{Table: table, ID: id}
	}
	return nil
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullInt64ToInt64 converts sql.NullInt64 to int64, zero when NULL
func nullInt64ToInt64(nv sql.NullInt64) int64 {
	if nv.Valid {
		return nv.Int64
	}
	return 0
}

// nullFloat64ToFloat64 converts sql.NullFloat64 to float64, zero when NULL
func nullFloat64ToFloat64(nf sql.NullFloat64) float64 {
	if nf.Valid {
		return nf.Float64
	}
	return 0
}
