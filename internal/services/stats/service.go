// Package stats holds the grouped and aggregate reports
package stats

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/models"
)

// Report bundles every aggregate shown on the statistics screen
type Report struct {
	VariantCounts      []models.GeneVariantCount
	AverageFrequencies []models.VariantFrequency
	Totals             models.Totals
	// OrphanedLinks counts associations pointing at a missing sample or variant
	OrphanedLinks int
}

// Service defines the aggregate reporting operations
type Service interface {
	VariantCountsPerGene(ctx context.Context) ([]models.GeneVariantCount, error)
	AverageAlleleFrequencyPerVariant(ctx context.Context) ([]models.VariantFrequency, error)
	TotalSamples(ctx context.Context) (int, error)
	TotalGenes(ctx context.Context) (int, error)
	Report(ctx context.Context) (*Report, error)
}

// service implements Service interface
type service struct {
	repo database.StatsRepository
}

// NewService creates a new stats service
func NewService(repo database.StatsRepository) Service {
	return &service{repo: repo}
}

// VariantCountsPerGene counts variants per gene, zero-variant genes included
func (s *service) VariantCountsPerGene(ctx context.Context) ([]models.GeneVariantCount, error) {
	return s.repo.VariantCountsPerGene(ctx)
}

// AverageAlleleFrequencyPerVariant averages allele frequency over each variant's links
func (s *service) AverageAlleleFrequencyPerVariant(ctx context.Context) ([]models.VariantFrequency, error) {
	return s.repo.AverageAlleleFrequencyPerVariant(ctx)
}

// TotalSamples counts all samples
func (s *service) TotalSamples(ctx context.Context) (int, error) {
	return s.repo.TotalSamples(ctx)
}

// TotalGenes counts all genes
func (s *service) TotalGenes(ctx context.Context) (int, error) {
	return s.repo.TotalGenes(ctx)
}

// Report runs every aggregate. The first failing query aborts the report.
func (s *service) Report(ctx context.Context) (*Report, error) {
	counts, err := s.repo.VariantCountsPerGene(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count variants per gene: %w", err)
	}

	freqs, err := s.repo.AverageAlleleFrequencyPerVariant(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to average allele frequencies: %w", err)
	}

	var totals models.Totals
	if totals.Samples, err = s.repo.TotalSamples(ctx); err != nil {
		return nil, fmt.Errorf("failed to count samples: %w", err)
	}
	if totals.Genes, err = s.repo.TotalGenes(ctx); err != nil {
		return nil, fmt.Errorf("failed to count genes: %w", err)
	}
	if totals.Variants, err = s.repo.TotalVariants(ctx); err != nil {
		return nil, fmt.Errorf("failed to count variants: %w", err)
	}

	orphans, err := s.repo.CountOrphanedLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orphaned links: %w", err)
	}

	return &Report{
		VariantCounts:      counts,
		AverageFrequencies: freqs,
		Totals:             totals,
		OrphanedLinks:      orphans,
	}, nil
}
