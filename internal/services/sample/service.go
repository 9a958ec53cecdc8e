// Package sample holds the business operations on samples and their variant links
package sample

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/models"
)

// Service defines all sample-related business operations
type Service interface {
	// Read operations
	GetSampleByID(ctx context.Context, id int) (*models.Sample, error)
	GetLinksForSample(ctx context.Context, id int) ([]*models.SampleVariant, error)

	// Write operations
	InsertSample(ctx context.Context, req InsertSampleRequest) (int, error)
	LinkVariant(ctx context.Context, req LinkVariantRequest) (int, error)
	DeleteSample(ctx context.Context, id int) (database.DeleteResult, error)
}

// InsertSampleRequest encapsulates data for inserting a sample
type InsertSampleRequest struct {
	PatientID      string
	TissueType     string
	CollectionDate string // Raw text, e.g. "2024-01-15"
}

// LinkVariantRequest encapsulates data for linking a sample to a variant
type LinkVariantRequest struct {
	SampleID        int
	VariantID       int
	AlleleFrequency float64
}

// Option configures the sample service
type Option func(*service)

// WithRejectDuplicateLinks makes LinkVariant refuse a pair that is already linked
func WithRejectDuplicateLinks(reject bool) Option {
	return func(s *service) {
		s.linkOpts.RejectDuplicates = reject
	}
}

// service implements Service interface
type service struct {
	repo     database.SampleRepository
	linkOpts database.LinkOptions
}

// NewService creates a new sample service
func NewService(repo database.SampleRepository, opts ...Option) Service {
	s := &service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetSampleByID retrieves a single sample
func (s *service) GetSampleByID(ctx context.Context, id int) (*models.Sample, error) {
	return s.repo.GetSampleByID(ctx, id)
}

// GetLinksForSample retrieves the variant links of a sample
func (s *service) GetLinksForSample(ctx context.Context, id int) ([]*models.SampleVariant, error) {
	return s.repo.GetLinksForSample(ctx, id)
}

// InsertSample validates and inserts a sample
func (s *service) InsertSample(ctx context.Context, req InsertSampleRequest) (int, error) {
	if strings.TrimSpace(req.PatientID) == "" {
		return 0, ErrEmptyPatientID
	}

	id, err := s.repo.InsertSample(ctx, req.PatientID, req.TissueType, req.CollectionDate)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sample: %w", err)
	}

	slog.Info("sample inserted", "id", id, "patient_id", req.PatientID)
	return id, nil
}

// LinkVariant links a sample to a variant with a measured allele frequency.
// Repeated pairs are stored unless the service was built WithRejectDuplicateLinks(true).
// A missing sample or variant surfaces as database.ErrReferential.
func (s *service) LinkVariant(ctx context.Context, req LinkVariantRequest) (int, error) {
	if math.IsNaN(req.AlleleFrequency) || req.AlleleFrequency < 0 || req.AlleleFrequency > 1 {
		return 0, ErrInvalidAlleleFrequency
	}

	id, err := s.repo.LinkSampleVariant(ctx, req.SampleID, req.VariantID, req.AlleleFrequency, s.linkOpts)
	if err != nil {
		slog.Warn("sample link failed", "sample_id", req.SampleID, "variant_id", req.VariantID, "error", err)
		return 0, fmt.Errorf("failed to link sample %d to variant %d: %w", req.SampleID, req.VariantID, err)
	}

	slog.Info("sample linked", "sample_id", req.SampleID, "variant_id", req.VariantID, "allele_frequency", req.AlleleFrequency)
	return id, nil
}

// DeleteSample removes a sample together with its variant links
func (s *service) DeleteSample(ctx context.Context, id int) (database.DeleteResult, error) {
	res, err := s.repo.DeleteSample(ctx, id)
	if err != nil {
		return database.DeleteResult{}, fmt.Errorf("failed to delete sample %d: %w", id, err)
	}

	slog.Info("sample delete", "sample_id", id, "deleted", res.SampleDeleted, "links_deleted", res.LinksDeleted)
	return res, nil
}
