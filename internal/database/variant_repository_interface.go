package database

import (
	"context"

	"github.com/thenoetrevino/genovar/internal/models"
)

// VariantReader defines read operations for variants.
type VariantReader interface {
	GetVariantByID(ctx context.Context, variantID int) (*models.Variant, error)
}

// VariantWriter defines write operations for variants.
type VariantWriter interface {
	InsertVariant(ctx context.Context, geneID int, name string, position int64, mutationType, significance string) (int, error)
	UpdateVariantSignificance(ctx context.Context, variantID int, significance string) (int64, error)
}

// VariantRepository combines all variant-related operations.
type VariantRepository interface {
	VariantReader
	VariantWriter
}
