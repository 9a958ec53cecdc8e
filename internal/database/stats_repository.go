package database

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/genovar/internal/models"
)

// StatsRepo runs grouped and aggregate reports.
type StatsRepo struct {
	db *sqlx.DB
}

// VariantCountsPerGene returns one entry per gene, including genes without
// variants (count 0), ordered by count descending then gene name
func (r *StatsRepo) VariantCountsPerGene(ctx context.Context) ([]models.GeneVariantCount, error) {
	result := []models.GeneVariantCount{}
	err := r.db.SelectContext(ctx, &result, `
		SELECT g.gene_name, COUNT(v.variant_id) AS variant_count
		FROM genes g
		LEFT JOIN variants v ON g.gene_id = v.gene_id
		GROUP BY g.gene_id, g.gene_name
		ORDER BY variant_count DESC, g.gene_name
	`)
	if err != nil {
		return nil, &StorageError{Op: "count variants per gene", Err: err}
	}
	return result, nil
}

// AverageAlleleFrequencyPerVariant returns the mean allele frequency of each
// variant over its links. Variants without links are omitted.
func (r *StatsRepo) AverageAlleleFrequencyPerVariant(ctx context.Context) ([]models.VariantFrequency, error) {
	result := []models.VariantFrequency{}
	err := r.db.SelectContext(ctx, &result, `
		SELECT v.variant_name, COALESCE(AVG(sv.allele_frequency), 0.0) AS average_frequency
		FROM variants v
		INNER JOIN sample_variants sv ON v.variant_id = sv.variant_id
		GROUP BY v.variant_id, v.variant_name
		ORDER BY v.variant_name
	`)
	if err != nil {
		return nil, &StorageError{Op: "average allele frequency", Err: err}
	}
	return result, nil
}

// TotalSamples counts all samples
func (r *StatsRepo) TotalSamples(ctx context.Context) (int, error) {
	return r.count(ctx, "samples")
}

// TotalGenes counts all genes
func (r *StatsRepo) TotalGenes(ctx context.Context) (int, error) {
	return r.count(ctx, "genes")
}

// TotalVariants counts all variants
func (r *StatsRepo) TotalVariants(ctx context.Context) (int, error) {
	return r.count(ctx, "variants")
}

// CountOrphanedLinks counts associations whose sample or variant no longer exists.
// Always zero while every write goes through the repositories.
func (r *StatsRepo) CountOrphanedLinks(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `
		SELECT COUNT(*)
		FROM sample_variants sv
		LEFT JOIN samples s ON sv.sample_id = s.sample_id
		LEFT JOIN variants v ON sv.variant_id = v.variant_id
		WHERE s.sample_id IS NULL OR v.variant_id IS NULL
	`)
	if err != nil {
		return 0, &StorageError{Op: "count orphaned links", Err: err}
	}
	return n, nil
}

// count runs a full-table COUNT(*); table is always one of the fixed schema names
func (r *StatsRepo) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, &StorageError{Op: "count " + table, Err: err}
	}
	return n, nil
}
