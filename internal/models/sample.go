package models

// Sample represents a biological specimen collected from a patient
// A patient may contribute any number of samples
type Sample struct {
	ID             int
	PatientID      string
	TissueType     string
	CollectionDate string // Raw date text, e.g. "2024-01-15"
}

// SampleVariant records that a sample carries a variant at a measured allele frequency
type SampleVariant struct {
	ID              int
	SampleID        int
	VariantID       int
	AlleleFrequency float64
}
