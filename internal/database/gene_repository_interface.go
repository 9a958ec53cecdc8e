package database

import (
	"context"

	"github.com/thenoetrevino/genovar/internal/models"
)

// GeneReader defines read operations for genes.
type GeneReader interface {
	GetGeneByName(ctx context.Context, name string) (*models.Gene, error)
}

// GeneWriter defines write operations for genes.
type GeneWriter interface {
	InsertGene(ctx context.Context, name, chromosome, function string) (int, error)
}

// GeneRepository combines all gene-related operations.
type GeneRepository interface {
	GeneReader
	GeneWriter
}
