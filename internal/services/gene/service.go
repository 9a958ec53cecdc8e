// Package gene holds the business operations on genes
package gene

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/models"
)

// Service defines all gene-related business operations
type Service interface {
	// Read operations
	GetGeneByName(ctx context.Context, name string) (*models.Gene, error)

	// Write operations
	InsertGene(ctx context.Context, req InsertGeneRequest) (int, error)
}

// InsertGeneRequest encapsulates data for inserting a gene
type InsertGeneRequest struct {
	Name       string
	Chromosome string // Stored as given, e.g. "17" or "X"
	Function   string
}

// service implements Service interface
type service struct {
	repo database.GeneRepository
}

// NewService creates a new gene service
func NewService(repo database.GeneRepository) Service {
	return &service{repo: repo}
}

// GetGeneByName retrieves a gene by its exact name
func (s *service) GetGeneByName(ctx context.Context, name string) (*models.Gene, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return s.repo.GetGeneByName(ctx, name)
}

// InsertGene validates and inserts a gene.
// Duplicate names surface as database.ErrDuplicateKey.
func (s *service) InsertGene(ctx context.Context, req InsertGeneRequest) (int, error) {
	if err := validateInsertGene(req); err != nil {
		return 0, err
	}

	id, err := s.repo.InsertGene(ctx, req.Name, req.Chromosome, req.Function)
	if err != nil {
		slog.Warn("gene insert failed", "name", req.Name, "error", err)
		return 0, fmt.Errorf("failed to insert gene: %w", err)
	}

	slog.Info("gene inserted", "id", id, "name", req.Name)
	return id, nil
}

// validateInsertGene validates an InsertGeneRequest
func validateInsertGene(req InsertGeneRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
