package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/genovar/internal/models"
)

// QueryRepo runs the read-only join queries.
// Results are ordered by surrogate id so repeated calls return the same sequence.
// Nullable columns are coalesced so rows scan straight into the models.
type QueryRepo struct {
	db *sqlx.DB
}

// VariantsByGene returns the variants of the gene with exactly this name.
// An unknown gene or a gene without variants yields an empty slice.
func (r *QueryRepo) VariantsByGene(ctx context.Context, geneName string) ([]models.VariantRow, error) {
	result := []models.VariantRow{}
	err := r.db.SelectContext(ctx, &result, `
		SELECT v.variant_id,
		       v.variant_name,
		       COALESCE(v.position, 0) AS position,
		       COALESCE(v.mutation_type, '') AS mutation_type,
		       COALESCE(v.clinical_significance, '') AS clinical_significance
		FROM variants v
		INNER JOIN genes g ON v.gene_id = g.gene_id
		WHERE g.gene_name = ?
		ORDER BY v.variant_id
	`, geneName)
	if err != nil {
		return nil, &StorageError{Op: "query variants by gene", Err: err}
	}
	return result, nil
}

// PathogenicVariants returns every variant classified exactly as one of
// models.PathogenicSignificances, together with its gene name
func (r *QueryRepo) PathogenicVariants(ctx context.Context) ([]models.VariantSummaryRow, error) {
	return r.variantsClassifiedAs(ctx, models.PathogenicSignificances)
}

// variantsClassifiedAs returns the variants whose significance matches one of
// significances exactly, ordered by variant id
func (r *QueryRepo) variantsClassifiedAs(ctx context.Context, significances []string) ([]models.VariantSummaryRow, error) {
	result := []models.VariantSummaryRow{}
	if len(significances) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT v.variant_id, g.gene_name, v.variant_name, v.clinical_significance
		FROM variants v
		INNER JOIN genes g ON v.gene_id = g.gene_id
		WHERE v.clinical_significance IN (?)
		ORDER BY v.variant_id
	`, significances)
	if err != nil {
		return nil, &StorageError{Op: "query pathogenic variants", Err: err}
	}

	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, &StorageError{Op: "query pathogenic variants", Err: err}
	}
	return result, nil
}

// SamplesWithVariant returns the samples linked to the variant with exactly
// this name. Each row carries the allele frequency of that specific link, so a
// sample linked twice appears twice.
func (r *QueryRepo) SamplesWithVariant(ctx context.Context, variantName string) ([]models.SampleRow, error) {
	result := []models.SampleRow{}
	err := r.db.SelectContext(ctx, &result, `
		SELECT s.sample_id,
		       s.patient_id,
		       COALESCE(s.tissue_type, '') AS tissue_type,
		       COALESCE(sv.allele_frequency, 0) AS allele_frequency
		FROM samples s
		INNER JOIN sample_variants sv ON s.sample_id = sv.sample_id
		INNER JOIN variants v ON sv.variant_id = v.variant_id
		WHERE v.variant_name = ?
		ORDER BY sv.id
	`, variantName)
	if err != nil {
		return nil, &StorageError{Op: "query samples with variant", Err: err}
	}
	return result, nil
}
