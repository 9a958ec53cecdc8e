// Package testutil provides shared database fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/genovar/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema.
// The connection is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := database.Provision(context.Background(), db); err != nil {
		t.Fatalf("Failed to provision schema: %v", err)
	}

	return db
}

// CreateTestGene inserts a gene directly and returns its ID
func CreateTestGene(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return insert(t, db,
		"INSERT INTO genes (gene_name, chromosome, function) VALUES (?, ?, ?)",
		name, "17", "test gene")
}

// CreateTestVariant inserts a variant directly and returns its ID
func CreateTestVariant(t *testing.T, db *sql.DB, geneID int, name, significance string) int {
	t.Helper()
	return insert(t, db,
		`INSERT INTO variants (gene_id, variant_name, position, mutation_type, clinical_significance)
		 VALUES (?, ?, ?, ?, ?)`,
		geneID, name, 1000, "SNP", significance)
}

// CreateTestSample inserts a sample directly and returns its ID
func CreateTestSample(t *testing.T, db *sql.DB, patientID, tissueType string) int {
	t.Helper()
	return insert(t, db,
		"INSERT INTO samples (patient_id, tissue_type, collection_date) VALUES (?, ?, ?)",
		patientID, tissueType, "2024-01-15")
}

// LinkTestSample inserts a sample-variant association directly and returns its ID
func LinkTestSample(t *testing.T, db *sql.DB, sampleID, variantID int, alleleFrequency float64) int {
	t.Helper()
	return insert(t, db,
		"INSERT INTO sample_variants (sample_id, variant_id, allele_frequency) VALUES (?, ?, ?)",
		sampleID, variantID, alleleFrequency)
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func insert(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("Failed to insert test row: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get inserted ID: %v", err)
	}
	return int(id)
}
