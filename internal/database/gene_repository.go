package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/genovar/internal/models"
)

// GeneRepo handles all gene-related database operations.
type GeneRepo struct {
	db *sql.DB
}

// InsertGene adds a gene and returns its new id.
// A name that already exists yields a *DuplicateKeyError and writes nothing.
func (r *GeneRepo) InsertGene(ctx context.Context, name, chromosome, function string) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO genes (gene_name, chromosome, function) VALUES (?, ?, ?)`,
			name, chromosome, function,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &DuplicateKeyError{Table: "genes", Column: "gene_name", Value: name}
			}
			return &StorageError{Op: "insert gene", Err: err}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &StorageError{Op: "insert gene", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// GetGeneByName looks up a gene by its exact name
func (r *GeneRepo) GetGeneByName(ctx context.Context, name string) (*models.Gene, error) {
	var (
		gene       models.Gene
		chromosome sql.NullString
		function   sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT gene_id, gene_name, chromosome, function FROM genes WHERE gene_name = ?`,
		name,
	).Scan(&gene.ID, &gene.Name, &chromosome, &function)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get gene", Err: err}
	}

	gene.Chromosome = NullStringToString(chromosome)
	gene.Function = NullStringToString(function)
	return &gene, nil
}
