package database

// DataStore defines the unified interface for all data operations needed by the services.
// It is composed of smaller, domain-specific interfaces; consumers can depend on
// the smaller ones (e.g., GeneRepository, QueryRepository) for clearer dependencies.
type DataStore interface {
	GeneRepository
	VariantRepository
	SampleRepository
	QueryRepository
	StatsRepository
}
