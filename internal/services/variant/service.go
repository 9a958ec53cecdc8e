// Package variant holds the business operations on variants
package variant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/models"
)

// Service defines all variant-related business operations
type Service interface {
	// Read operations
	GetVariantByID(ctx context.Context, id int) (*models.Variant, error)

	// Write operations
	InsertVariant(ctx context.Context, req InsertVariantRequest) (int, error)
	UpdateSignificance(ctx context.Context, req UpdateSignificanceRequest) (int64, error)
}

// InsertVariantRequest encapsulates data for inserting a variant
type InsertVariantRequest struct {
	GeneID       int
	Name         string
	Position     int64 // Stored as given, no coordinate validation
	MutationType string
	Significance string
}

// UpdateSignificanceRequest encapsulates data for reclassifying a variant
type UpdateSignificanceRequest struct {
	VariantID    int
	Significance string
}

// service implements Service interface
type service struct {
	repo database.VariantRepository
}

// NewService creates a new variant service
func NewService(repo database.VariantRepository) Service {
	return &service{repo: repo}
}

// GetVariantByID retrieves a single variant
func (s *service) GetVariantByID(ctx context.Context, id int) (*models.Variant, error) {
	return s.repo.GetVariantByID(ctx, id)
}

// InsertVariant validates and inserts a variant.
// An unknown gene surfaces as database.ErrReferential, a taken name as database.ErrDuplicateKey.
func (s *service) InsertVariant(ctx context.Context, req InsertVariantRequest) (int, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, ErrEmptyName
	}

	id, err := s.repo.InsertVariant(ctx, req.GeneID, req.Name, req.Position, req.MutationType, req.Significance)
	if err != nil {
		slog.Warn("variant insert failed", "name", req.Name, "gene_id", req.GeneID, "error", err)
		return 0, fmt.Errorf("failed to insert variant: %w", err)
	}

	slog.Info("variant inserted", "id", id, "name", req.Name, "gene_id", req.GeneID)
	return id, nil
}

// UpdateSignificance reclassifies a variant and returns the affected row count.
// Zero means the variant does not exist; callers decide how to report it.
// The significance is stored as entered, empty included.
func (s *service) UpdateSignificance(ctx context.Context, req UpdateSignificanceRequest) (int64, error) {
	affected, err := s.repo.UpdateVariantSignificance(ctx, req.VariantID, req.Significance)
	if err != nil {
		return 0, fmt.Errorf("failed to update variant %d: %w", req.VariantID, err)
	}

	if affected == 0 {
		slog.Info("significance update matched no variant", "variant_id", req.VariantID)
	}
	return affected, nil
}
