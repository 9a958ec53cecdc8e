package models

// Gene represents a named genomic locus
// Gene names are unique across the database
type Gene struct {
	ID         int
	Name       string
	Chromosome string
	Function   string // Free-text functional description
}
