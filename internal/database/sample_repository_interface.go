package database

import (
	"context"

	"github.com/thenoetrevino/genovar/internal/models"
)

// SampleReader defines read operations for samples.
type SampleReader interface {
	GetSampleByID(ctx context.Context, sampleID int) (*models.Sample, error)
	GetLinksForSample(ctx context.Context, sampleID int) ([]*models.SampleVariant, error)
}

// SampleWriter defines write operations for samples.
type SampleWriter interface {
	InsertSample(ctx context.Context, patientID, tissueType, collectionDate string) (int, error)
	DeleteSample(ctx context.Context, sampleID int) (DeleteResult, error)
}

// SampleVariantLinker defines operations for managing sample-variant associations.
type SampleVariantLinker interface {
	LinkSampleVariant(ctx context.Context, sampleID, variantID int, alleleFrequency float64, opts LinkOptions) (int, error)
}

// SampleRepository combines all sample-related operations.
type SampleRepository interface {
	SampleReader
	SampleWriter
	SampleVariantLinker
}
