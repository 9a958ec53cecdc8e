package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/genovar/internal/models"
)

// SampleRepo handles samples and their variant associations.
type SampleRepo struct {
	db *sql.DB
}

// LinkOptions controls how LinkSampleVariant treats repeated pairs
type LinkOptions struct {
	// RejectDuplicates refuses a (sample, variant) pair that is already linked.
	// By default repeated links are stored, e.g. for re-genotyping.
	RejectDuplicates bool
}

// DeleteResult describes what DeleteSample removed
type DeleteResult struct {
	SampleDeleted bool
	LinksDeleted  int64
}

// InsertSample adds a sample and returns its new id.
// Patient ids are not unique; one patient may contribute several samples.
func (r *SampleRepo) InsertSample(ctx context.Context, patientID, tissueType, collectionDate string) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO samples (patient_id, tissue_type, collection_date) VALUES (?, ?, ?)`,
			patientID, tissueType, collectionDate,
		)
		if err != nil {
			return &StorageError{Op: "insert sample", Err: err}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &StorageError{Op: "insert sample", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// LinkSampleVariant records that a sample carries a variant at the given allele
// frequency and returns the association id. Both ends must exist.
func (r *SampleRepo) LinkSampleVariant(ctx context.Context, sampleID, variantID int, alleleFrequency float64, opts LinkOptions) (int, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := requireRow(ctx, tx, "link sample variant", "samples", "sample_id", sampleID); err != nil {
			return err
		}
		if err := requireRow(ctx, tx, "link sample variant", "variants", "variant_id", variantID); err != nil {
			return err
		}

		if opts.RejectDuplicates {
			var existing int
			err := tx.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM sample_variants WHERE sample_id = ? AND variant_id = ?`,
				sampleID, variantID,
			).Scan(&existing)
			if err != nil {
				return &StorageError{Op: "link sample variant", Err: err}
			}
			if existing > 0 {
				return ErrDuplicateLink
			}
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO sample_variants (sample_id, variant_id, allele_frequency) VALUES (?, ?, ?)`,
			sampleID, variantID, alleleFrequency,
		)
		if err != nil {
			return &StorageError{Op: "link sample variant", Err: err}
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &StorageError{Op: "link sample variant", Err: err}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// DeleteSample removes a sample and every association referencing it in one
// transaction. Deleting an unknown id removes nothing and is not an error.
func (r *SampleRepo) DeleteSample(ctx context.Context, sampleID int) (DeleteResult, error) {
	var res DeleteResult
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Associations first so no orphan can ever be committed
		result, err := tx.ExecContext(ctx, `DELETE FROM sample_variants WHERE sample_id = ?`, sampleID)
		if err != nil {
			return &StorageError{Op: "delete sample associations", Err: err}
		}
		links, err := result.RowsAffected()
		if err != nil {
			return &StorageError{Op: "delete sample associations", Err: err}
		}

		result, err = tx.ExecContext(ctx, `DELETE FROM samples WHERE sample_id = ?`, sampleID)
		if err != nil {
			return &StorageError{Op: "delete sample", Err: err}
		}
		samples, err := result.RowsAffected()
		if err != nil {
			return &StorageError{Op: "delete sample", Err: err}
		}

		res = DeleteResult{SampleDeleted: samples > 0, LinksDeleted: links}
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}
	return res, nil
}

// GetSampleByID retrieves a single sample.
// The driver converts DATE-typed columns to time.Time, so the date is cast back
// to the text it was stored as.
func (r *SampleRepo) GetSampleByID(ctx context.Context, sampleID int) (*models.Sample, error) {
	var (
		s              models.Sample
		tissueType     sql.NullString
		collectionDate sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT sample_id, patient_id, tissue_type, CAST(collection_date AS TEXT) AS collection_date
		FROM samples WHERE sample_id = ?`,
		sampleID,
	).Scan(&s.ID, &s.PatientID, &tissueType, &collectionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get sample", Err: err}
	}

	s.TissueType = NullStringToString(tissueType)
	s.CollectionDate = NullStringToString(collectionDate)
	return &s, nil
}

// GetLinksForSample retrieves every association row of a sample ordered by id
func (r *SampleRepo) GetLinksForSample(ctx context.Context, sampleID int) ([]*models.SampleVariant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sample_id, variant_id, allele_frequency
		FROM sample_variants
		WHERE sample_id = ?
		ORDER BY id
	`, sampleID)
	if err != nil {
		return nil, &StorageError{Op: "get sample links", Err: err}
	}
	defer rows.Close()

	links := []*models.SampleVariant{}
	for rows.Next() {
		link := &models.SampleVariant{}
		var af sql.NullFloat64
		if err := rows.Scan(&link.ID, &link.SampleID, &link.VariantID, &af); err != nil {
			return nil, &StorageError{Op: "get sample links", Err: err}
		}
		link.AlleleFrequency = nullFloat64ToFloat64(af)
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "get sample links", Err: err}
	}
	return links, nil
}
