// Package app wires the repositories and services over one database handle
package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/seed"
	"github.com/thenoetrevino/genovar/internal/services/gene"
	"github.com/thenoetrevino/genovar/internal/services/query"
	"github.com/thenoetrevino/genovar/internal/services/sample"
	"github.com/thenoetrevino/genovar/internal/services/stats"
	"github.com/thenoetrevino/genovar/internal/services/variant"
)

// App holds all application services and provides dependency injection.
// It does not own the database handle; the caller closes it.
type App struct {
	Logger *slog.Logger

	// Service layer (business logic)
	GeneService    gene.Service
	VariantService variant.Service
	SampleService  sample.Service
	QueryService   query.Service
	StatsService   stats.Service
	Seeder         *seed.Loader
}

// New creates a new App with all services initialized over db
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	var repo database.DataStore = database.NewRepository(db)
	genes := gene.NewService(repo)
	variants := variant.NewService(repo)
	samples := sample.NewService(repo, sample.WithRejectDuplicateLinks(cfg.rejectDuplicateLinks))

	cfg.logger.Debug("app initialized", "reject_duplicate_links", cfg.rejectDuplicateLinks)

	return &App{
		Logger:         cfg.logger,
		GeneService:    genes,
		VariantService: variants,
		SampleService:  samples,
		QueryService:   query.NewService(repo),
		StatsService:   stats.NewService(repo),
		Seeder:         seed.NewLoader(genes, variants, samples),
	}
}
