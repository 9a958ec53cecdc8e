package models

// ============================================================================
// CLINICAL SIGNIFICANCE CONSTANTS
// ============================================================================

// Clinical significance values used by the queries and the demo dataset.
// Significance is free text, so other values are stored as given.
const (
	SignificancePathogenic       = "Pathogenic"
	SignificanceLikelyPathogenic = "Likely Pathogenic"
	SignificanceUncertain        = "Uncertain"
	SignificanceLikelyBenign     = "Likely Benign"
	SignificanceBenign           = "Benign"
)

// PathogenicSignificances lists the classifications reported by the pathogenic variants query
var PathogenicSignificances = []string{
	SignificancePathogenic,
	SignificanceLikelyPathogenic,
}

// IsPathogenicSignificance reports whether s is one of PathogenicSignificances
func IsPathogenicSignificance(s string) bool {
	for _, p := range PathogenicSignificances {
		if s == p {
			return true
		}
	}
	return false
}

// ============================================================================
// MUTATION TYPE CONSTANTS
// ============================================================================

// Common mutation type tags
const (
	MutationSNP       = "SNP"
	MutationDeletion  = "Deletion"
	MutationInsertion = "Insertion"
)
