package models

// Variant represents a sequence change within a gene
type Variant struct {
	ID                   int
	GeneID               int // ID of the gene this variant belongs to
	Name                 string
	Position             int64 // Raw genomic position, stored as given
	MutationType         string
	ClinicalSignificance string
}

// IsPathogenic reports whether the variant is classified as pathogenic or likely pathogenic.
// The comparison is exact and case-sensitive.
func (v *Variant) IsPathogenic() bool {
	return IsPathogenicSignificance(v.ClinicalSignificance)
}
