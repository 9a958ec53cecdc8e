package seed

import "github.com/thenoetrevino/genovar/internal/models"

type geneRow struct {
	name       string
	chromosome string
	function   string
}

type variantRow struct {
	name         string
	gene         string
	position     int64
	mutationType string
	significance string
}

type sampleRow struct {
	key            string
	patientID      string
	tissueType     string
	collectionDate string
}

type linkRow struct {
	sample          string
	variant         string
	alleleFrequency float64
}

var genes = []geneRow{
	{"BRCA1", "17", "DNA repair, tumor suppressor"},
	{"TP53", "17", "Cell cycle regulation, apoptosis"},
	{"EGFR", "7", "Cell growth and division"},
	{"BRCA2", "13", "DNA repair, homologous recombination"},
}

var variants = []variantRow{
	{"rs80357906", "BRCA1", 43091434, models.MutationSNP, models.SignificancePathogenic},
	{"rs80357914", "BRCA1", 43094692, models.MutationDeletion, models.SignificancePathogenic},
	{"rs28934576", "TP53", 7577548, models.MutationSNP, models.SignificanceLikelyPathogenic},
	{"rs11540652", "TP53", 7579472, models.MutationSNP, models.SignificanceBenign},
	{"rs121434568", "EGFR", 55259515, models.MutationInsertion, models.SignificancePathogenic},
	{"rs1050171", "EGFR", 55249063, models.MutationSNP, models.SignificanceUncertain},
	{"rs80359550", "BRCA2", 32929232, models.MutationSNP, models.SignificancePathogenic},
}

var samples = []sampleRow{
	{"s1", "PATIENT001", "Blood", "2024-01-15"},
	{"s2", "PATIENT001", "Tumor", "2024-01-16"},
	{"s3", "PATIENT002", "Blood", "2024-02-10"},
	{"s4", "PATIENT003", "Saliva", "2024-03-05"},
	{"s5", "PATIENT004", "Blood", "2024-04-12"},
}

// Links reference samples by key and variants by name
var links = []linkRow{
	{"s1", "rs80357906", 0.48},
	{"s2", "rs80357906", 0.92},
	{"s2", "rs28934576", 0.85},
	{"s3", "rs11540652", 0.51},
	{"s3", "rs1050171", 0.48},
	{"s4", "rs121434568", 0.47},
	{"s5", "rs80359550", 0.50},
}
