package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and provisions the schema
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Provision(context.Background(), db); err != nil {
		t.Fatalf("Failed to provision schema: %v", err)
	}
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "genovar-test.db")

	db, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := Provision(context.Background(), db); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to provision schema: %v", err)
	}
	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	if err := Provision(context.Background(), newDB); err != nil {
		t.Fatalf("Failed to provision reopened database: %v", err)
	}
	return newDB
}

// ----------------------------------------------------------------------------
// Fixture helpers
// ----------------------------------------------------------------------------

func mustInsertGene(t *testing.T, repo *Repository, name string) int {
	t.Helper()
	id, err := repo.InsertGene(context.Background(), name, "17", "test gene")
	if err != nil {
		t.Fatalf("Failed to insert gene %s: %v", name, err)
	}
	return id
}

func mustInsertVariant(t *testing.T, repo *Repository, geneID int, name, significance string) int {
	t.Helper()
	id, err := repo.InsertVariant(context.Background(), geneID, name, 1000, "SNP", significance)
	if err != nil {
		t.Fatalf("Failed to insert variant %s: %v", name, err)
	}
	return id
}

func mustInsertSample(t *testing.T, repo *Repository, patientID, tissue string) int {
	t.Helper()
	id, err := repo.InsertSample(context.Background(), patientID, tissue, "2024-01-15")
	if err != nil {
		t.Fatalf("Failed to insert sample %s: %v", patientID, err)
	}
	return id
}

func mustLink(t *testing.T, repo *Repository, sampleID, variantID int, af float64) {
	t.Helper()
	if _, err := repo.LinkSampleVariant(context.Background(), sampleID, variantID, af, LinkOptions{}); err != nil {
		t.Fatalf("Failed to link sample %d to variant %d: %v", sampleID, variantID, err)
	}
}
