package database

import (
	"context"

	"github.com/thenoetrevino/genovar/internal/models"
)

// QueryRepository defines the read-only join queries.
type QueryRepository interface {
	VariantsByGene(ctx context.Context, geneName string) ([]models.VariantRow, error)
	PathogenicVariants(ctx context.Context) ([]models.VariantSummaryRow, error)
	SamplesWithVariant(ctx context.Context, variantName string) ([]models.SampleRow, error)
}

// StatsRepository defines the aggregate reports.
type StatsRepository interface {
	VariantCountsPerGene(ctx context.Context) ([]models.GeneVariantCount, error)
	AverageAlleleFrequencyPerVariant(ctx context.Context) ([]models.VariantFrequency, error)
	TotalSamples(ctx context.Context) (int, error)
	TotalGenes(ctx context.Context) (int, error)
	TotalVariants(ctx context.Context) (int, error)
	CountOrphanedLinks(ctx context.Context) (int, error)
}
