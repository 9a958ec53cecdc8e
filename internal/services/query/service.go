// Package query holds the read-only join queries over genes, variants, and samples
package query

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/models"
)

// Service defines the read-only queries. None of them mutate state, so
// they can be re-issued freely.
type Service interface {
	VariantsByGene(ctx context.Context, geneName string) ([]models.VariantRow, error)
	PathogenicVariants(ctx context.Context) ([]models.VariantSummaryRow, error)
	SamplesWithVariant(ctx context.Context, variantName string) ([]models.SampleRow, error)
}

// service implements Service interface
type service struct {
	repo database.QueryRepository
}

// NewService creates a new query service
func NewService(repo database.QueryRepository) Service {
	return &service{repo: repo}
}

// VariantsByGene lists the variants of a gene by exact name.
// Unknown genes yield an empty slice, not an error.
func (s *service) VariantsByGene(ctx context.Context, geneName string) ([]models.VariantRow, error) {
	rows, err := s.repo.VariantsByGene(ctx, geneName)
	if err != nil {
		return nil, fmt.Errorf("failed to query variants for gene %q: %w", geneName, err)
	}
	return rows, nil
}

// PathogenicVariants lists variants classified Pathogenic or Likely Pathogenic
func (s *service) PathogenicVariants(ctx context.Context) ([]models.VariantSummaryRow, error) {
	rows, err := s.repo.PathogenicVariants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pathogenic variants: %w", err)
	}
	return rows, nil
}

// SamplesWithVariant lists the samples carrying a variant, with per-link allele frequency
func (s *service) SamplesWithVariant(ctx context.Context, variantName string) ([]models.SampleRow, error) {
	rows, err := s.repo.SamplesWithVariant(ctx, variantName)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples for variant %q: %w", variantName, err)
	}
	return rows, nil
}
