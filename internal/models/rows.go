package models

// VariantRow is one result of the variants-by-gene query
type VariantRow struct {
	VariantID            int    `db:"variant_id"`
	Name                 string `db:"variant_name"`
	Position             int64  `db:"position"`
	MutationType         string `db:"mutation_type"`
	ClinicalSignificance string `db:"clinical_significance"`
}

// VariantSummaryRow is one result of the pathogenic variants query
type VariantSummaryRow struct {
	VariantID            int    `db:"variant_id"`
	GeneName             string `db:"gene_name"`
	VariantName          string `db:"variant_name"`
	ClinicalSignificance string `db:"clinical_significance"`
}

// SampleRow is one result of the samples-with-variant query.
// AlleleFrequency is the measurement for this specific sample-variant pair.
type SampleRow struct {
	SampleID        int     `db:"sample_id"`
	PatientID       string  `db:"patient_id"`
	TissueType      string  `db:"tissue_type"`
	AlleleFrequency float64 `db:"allele_frequency"`
}

// GeneVariantCount is the number of variants recorded for a gene
type GeneVariantCount struct {
	GeneName string `db:"gene_name"`
	Count    int    `db:"variant_count"`
}

// VariantFrequency is the mean allele frequency of a variant across its linked samples
type VariantFrequency struct {
	VariantName      string  `db:"variant_name"`
	AverageFrequency float64 `db:"average_frequency"`
}

// Totals holds whole-table row counts
type Totals struct {
	Samples  int
	Genes    int
	Variants int
}
