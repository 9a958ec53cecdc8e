package database

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// driverName is the database/sql driver registered by modernc.org/sqlite
const driverName = "sqlite"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding; every
// repository shares the one connection passed in. Writes go through
// database/sql transactions, reads scan through sqlx.
type Repository struct {
	*GeneRepo
	*VariantRepo
	*SampleRepo
	*QueryRepo
	*StatsRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	xdb := sqlx.NewDb(db, driverName)
	return &Repository{
		GeneRepo:    &GeneRepo{db: db},
		VariantRepo: &VariantRepo{db: db},
		SampleRepo:  &SampleRepo{db: db},
		QueryRepo:   &QueryRepo{db: xdb},
		StatsRepo:   &StatsRepo{db: xdb},
	}
}

var _ DataStore = (*Repository)(nil)
