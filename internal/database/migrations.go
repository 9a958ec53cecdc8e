package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// tableDef pairs a table's DDL with the columns the queries depend on
type tableDef struct {
	name    string
	ddl     string
	columns []string
}

// schema lists tables in dependency order (referenced tables first)
var schema = []tableDef{
	{
		name: "genes",
		ddl: `
		CREATE TABLE IF NOT EXISTS genes (
			gene_id INTEGER PRIMARY KEY AUTOINCREMENT,
			gene_name TEXT UNIQUE NOT NULL,
			chromosome TEXT,
			function TEXT
		)`,
		columns: []string{"gene_id", "gene_name", "chromosome", "function"},
	},
	{
		name: "variants",
		ddl: `
		CREATE TABLE IF NOT EXISTS variants (
			variant_id INTEGER PRIMARY KEY AUTOINCREMENT,
			gene_id INTEGER NOT NULL,
			variant_name TEXT UNIQUE NOT NULL,
			position INTEGER,
			mutation_type TEXT,
			clinical_significance TEXT,
			FOREIGN KEY (gene_id) REFERENCES genes(gene_id)
		)`,
		columns: []string{"variant_id", "gene_id", "variant_name", "position", "mutation_type", "clinical_significance"},
	},
	{
		name: "samples",
		ddl: `
		CREATE TABLE IF NOT EXISTS samples (
			sample_id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_id TEXT NOT NULL,
			tissue_type TEXT,
			collection_date DATE
		)`,
		columns: []string{"sample_id", "patient_id", "tissue_type", "collection_date"},
	},
	{
		name: "sample_variants",
		ddl: `
		CREATE TABLE IF NOT EXISTS sample_variants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sample_id INTEGER NOT NULL,
			variant_id INTEGER NOT NULL,
			allele_frequency REAL,
			FOREIGN KEY (sample_id) REFERENCES samples(sample_id),
			FOREIGN KEY (variant_id) REFERENCES variants(variant_id)
		)`,
		columns: []string{"id", "sample_id", "variant_id", "allele_frequency"},
	},
}

// indexes speed up the join columns
var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_variants_gene ON variants(gene_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sample_variants_sample ON sample_variants(sample_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sample_variants_variant ON sample_variants(variant_id)`,
}

// Provision creates the genes, variants, samples, and sample_variants tables if
// they are absent and checks that existing tables have the expected columns.
// Safe to call repeatedly. It never inserts rows.
func Provision(ctx context.Context, db *sql.DB) error {
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		for _, t := range schema {
			if _, err := tx.ExecContext(ctx, t.ddl); err != nil {
				return &SchemaError{Table: t.name, Err: err}
			}
			slog.Debug("table provisioned", "table", t.name)
		}

		for _, ddl := range indexes {
			if _, err := tx.ExecContext(ctx, ddl); err != nil {
				return &SchemaError{Err: fmt.Errorf("create index: %w", err)}
			}
		}

		for _, t := range schema {
			if err := verifyColumns(ctx, tx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return err
		}
		return &SchemaError{Err: err}
	}
	return nil
}

// verifyColumns fails when a pre-existing table lacks a required column
func verifyColumns(ctx context.Context, tx *sql.Tx, t tableDef) error {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", t.name))
	if err != nil {
		return &SchemaError{Table: t.name, Err: err}
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return &SchemaError{Table: t.name, Err: err}
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return &SchemaError{Table: t.name, Err: err}
	}

	for _, col := range t.columns {
		if !present[col] {
			return &SchemaError{Table: t.name, Err: fmt.Errorf("existing table is missing column %q", col)}
		}
	}
	return nil
}
