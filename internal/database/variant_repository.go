package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/genovar/internal/models"
)

// VariantRepo handles all variant-related database operations.
type VariantRepo struct {
	db *sql.DB
}

// InsertVariant adds a variant under an existing gene and returns its new id.
// The gene is checked inside the same transaction, so a missing gene is
// reported as a *ReferentialError even when SQLite foreign keys are disabled.
func (r *VariantRepo) InsertVariant(ctx context.Context, geneID int, name string, position int64, mutationType, significance string) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "insert variant", "genes", "gene_id", geneID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO variants
			 (gene_id, variant_name, position, mutation_type, clinical_significance)
			 VALUES (?, ?, ?, ?, ?)`,
			geneID, name, position, mutationType, significance,
		)
		if err != nil {
			switch {
			case isUniqueViolation(err):
				return &DuplicateKeyError{Table: "variants", Column: "variant_name", Value: name}
			case isForeignKeyViolation(err):
				return &ReferentialError{Table: "genes", ID: geneID}
			}
			return &StorageError{Op: "insert variant", Err: err}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &StorageError{Op: "insert variant", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// UpdateVariantSignificance sets a variant's clinical significance in place.
// It returns the number of rows changed; zero means no variant has that id,
// which is not an error.
func (r *VariantRepo) UpdateVariantSignificance(ctx context.Context, variantID int, significance string) (int64, error) {
	var affected int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE variants SET clinical_significance = ? WHERE variant_id = ?`,
			significance, variantID,
		)
		if err != nil {
			return &StorageError{Op: "update variant significance", Err: err}
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return &StorageError{Op: "update variant significance", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// GetVariantByID retrieves a single variant
func (r *VariantRepo) GetVariantByID(ctx context.Context, variantID int) (*models.Variant, error) {
	var (
		v            models.Variant
		position     sql.NullInt64
		mutationType sql.NullString
		significance sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT variant_id, gene_id, variant_name, position, mutation_type, clinical_significance
		FROM variants
		WHERE variant_id = ?
	`, variantID).Scan(&v.ID, &v.GeneID, &v.Name, &position, &mutationType, &significance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get variant", Err: err}
	}

	v.Position = nullInt64ToInt64(position)
	v.MutationType = NullStringToString(mutationType)
	v.ClinicalSignificance = NullStringToString(significance)
	return &v, nil
}
