package database

import (
	"context"
	"errors"
	"math"
	"testing"
)

// ============================================================================
// GENES
// ============================================================================

func TestInsertGeneThenVariantsByGeneIsEmpty(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"BRCA1", "TP53", "EGFR", "a-gene-with-dashes"} {
		id, err := repo.InsertGene(ctx, name, "17", "")
		if err != nil {
			t.Fatalf("InsertGene(%s) failed: %v", name, err)
		}
		if id <= 0 {
			t.Errorf("Expected positive id for %s, got %d", name, id)
		}

		rows, err := repo.VariantsByGene(ctx, name)
		if err != nil {
			t.Fatalf("VariantsByGene(%s) failed: %v", name, err)
		}
		if rows == nil || len(rows) != 0 {
			t.Errorf("Expected empty non-nil slice for %s, got %v", name, rows)
		}
	}
}

func TestInsertDuplicateGene(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustInsertGene(t, repo, "BRCA1")
	before, _ := repo.TotalGenes(ctx)

	_, err := repo.InsertGene(ctx, "BRCA1", "13", "different function")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	var dupErr *DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("Expected *DuplicateKeyError, got %T", err)
	}
	if dupErr.Table != "genes" || dupErr.Value != "BRCA1" {
		t.Errorf("Unexpected duplicate key details: %+v", dupErr)
	}

	after, _ := repo.TotalGenes(ctx)
	if before != after {
		t.Errorf("Gene count changed from %d to %d after duplicate insert", before, after)
	}

	gene, err := repo.GetGeneByName(ctx, "BRCA1")
	if err != nil {
		t.Fatalf("Failed to get gene: %v", err)
	}
	if gene.Chromosome != "17" {
		t.Errorf("Original gene should be untouched, chromosome = %s", gene.Chromosome)
	}
}

func TestGetGeneByNameNotFound(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetGeneByName(context.Background(), "NOPE")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// ============================================================================
// VARIANTS
// ============================================================================

func TestInsertVariantUnknownGene(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.InsertVariant(ctx, 42, "rs1", 100, "SNP", "Benign")
	if !errors.Is(err, ErrReferential) {
		t.Fatalf("Expected ErrReferential, got %v", err)
	}

	var refErr *ReferentialError
	if errors.As(err, &refErr) && refErr.ID != 42 {
		t.Errorf("Expected referential error for id 42, got %d", refErr.ID)
	}

	total, _ := repo.TotalVariants(ctx)
	if total != 0 {
		t.Errorf("Expected no variants after rejected insert, got %d", total)
	}
}

func TestInsertVariantUnknownGeneWithoutForeignKeys(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	// The existence check must not rely on the engine enforcing foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		t.Fatalf("Failed to disable foreign keys: %v", err)
	}

	_, err := repo.InsertVariant(ctx, 7, "rs7", 100, "SNP", "Benign")
	if !errors.Is(err, ErrReferential) {
		t.Fatalf("Expected ErrReferential with foreign keys off, got %v", err)
	}
}

func TestInsertDuplicateVariant(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "BRCA1")
	mustInsertVariant(t, repo, geneID, "rs80357906", "Pathogenic")

	_, err := repo.InsertVariant(ctx, geneID, "rs80357906", 1, "SNP", "Benign")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestUpdateVariantSignificance(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "TP53")
	target := mustInsertVariant(t, repo, geneID, "rs28934576", "Uncertain")
	other := mustInsertVariant(t, repo, geneID, "rs11540652", "Uncertain")

	affected, err := repo.UpdateVariantSignificance(ctx, target, "Likely Pathogenic")
	if err != nil {
		t.Fatalf("UpdateVariantSignificance failed: %v", err)
	}
	if affected != 1 {
		t.Errorf("Expected 1 affected row, got %d", affected)
	}

	updated, err := repo.GetVariantByID(ctx, target)
	if err != nil {
		t.Fatalf("Failed to get variant: %v", err)
	}
	if updated.ClinicalSignificance != "Likely Pathogenic" {
		t.Errorf("Expected updated significance, got %s", updated.ClinicalSignificance)
	}

	untouched, err := repo.GetVariantByID(ctx, other)
	if err != nil {
		t.Fatalf("Failed to get variant: %v", err)
	}
	if untouched.ClinicalSignificance != "Uncertain" {
		t.Errorf("Other variant changed to %s", untouched.ClinicalSignificance)
	}
}

func TestUpdateVariantSignificanceMissing(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "EGFR")
	id := mustInsertVariant(t, repo, geneID, "rs1050171", "Uncertain")

	affected, err := repo.UpdateVariantSignificance(ctx, 999, "Benign")
	if err != nil {
		t.Fatalf("Expected no error for unknown variant, got %v", err)
	}
	if affected != 0 {
		t.Errorf("Expected 0 affected rows, got %d", affected)
	}

	v, _ := repo.GetVariantByID(ctx, id)
	if v.ClinicalSignificance != "Uncertain" {
		t.Errorf("Existing variant changed to %s", v.ClinicalSignificance)
	}
}

// ============================================================================
// SAMPLES AND LINKS
// ============================================================================

func TestInsertSampleSamePatientTwice(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	first := mustInsertSample(t, repo, "PATIENT001", "Blood")
	second := mustInsertSample(t, repo, "PATIENT001", "Tumor")
	if first == second {
		t.Errorf("Expected distinct sample ids, got %d twice", first)
	}

	total, _ := repo.TotalSamples(context.Background())
	if total != 2 {
		t.Errorf("Expected 2 samples, got %d", total)
	}
}

func TestInsertSampleKeepsCollectionDateText(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for _, date := range []string{"2024-01-15", "2023-12-31 08:30:00", "spring 2022", ""} {
		id, err := repo.InsertSample(ctx, "PATIENT001", "Blood", date)
		if err != nil {
			t.Fatalf("InsertSample(%q) failed: %v", date, err)
		}

		sample, err := repo.GetSampleByID(ctx, id)
		if err != nil {
			t.Fatalf("GetSampleByID(%d) failed: %v", id, err)
		}
		if sample.CollectionDate != date {
			t.Errorf("Expected collection date %q, got %q", date, sample.CollectionDate)
		}
	}
}

func TestLinkSampleVariantReferentialChecks(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "BRCA2")
	variantID := mustInsertVariant(t, repo, geneID, "rs80359550", "Pathogenic")
	sampleID := mustInsertSample(t, repo, "PATIENT004", "Blood")

	if _, err := repo.LinkSampleVariant(ctx, 999, variantID, 0.5, LinkOptions{}); !errors.Is(err, ErrReferential) {
		t.Errorf("Expected ErrReferential for unknown sample, got %v", err)
	}
	if _, err := repo.LinkSampleVariant(ctx, sampleID, 999, 0.5, LinkOptions{}); !errors.Is(err, ErrReferential) {
		t.Errorf("Expected ErrReferential for unknown variant, got %v", err)
	}

	links, _ := repo.GetLinksForSample(ctx, sampleID)
	if len(links) != 0 {
		t.Errorf("Expected no links after rejected inserts, got %d", len(links))
	}
}

func TestLinkSampleVariantDuplicates(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "BRCA1")
	variantID := mustInsertVariant(t, repo, geneID, "rs80357906", "Pathogenic")
	sampleID := mustInsertSample(t, repo, "PATIENT001", "Blood")

	// Permissive by default
	mustLink(t, repo, sampleID, variantID, 0.48)
	mustLink(t, repo, sampleID, variantID, 0.52)

	links, err := repo.GetLinksForSample(ctx, sampleID)
	if err != nil {
		t.Fatalf("Failed to get links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(links))
	}

	_, err = repo.LinkSampleVariant(ctx, sampleID, variantID, 0.5, LinkOptions{RejectDuplicates: true})
	if !errors.Is(err, ErrDuplicateLink) {
		t.Errorf("Expected ErrDuplicateLink, got %v", err)
	}

	links, _ = repo.GetLinksForSample(ctx, sampleID)
	if len(links) != 2 {
		t.Errorf("Rejected duplicate should not be stored, got %d links", len(links))
	}
}

func TestDeleteSampleCascadesLinks(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "BRCA1")
	v1 := mustInsertVariant(t, repo, geneID, "rs80357906", "Pathogenic")
	v2 := mustInsertVariant(t, repo, geneID, "rs80357914", "Pathogenic")

	tests := []struct {
		name  string
		links []int
	}{
		{"no links", nil},
		{"one link", []int{v1}},
		{"several links", []int{v1, v2, v1}},
	}

	keeper := mustInsertSample(t, repo, "KEEPER", "Blood")
	mustLink(t, repo, keeper, v1, 0.9)

	for _, tt := range tests {
		sampleID := mustInsertSample(t, repo, "PATIENT-"+tt.name, "Tumor")
		for _, v := range tt.links {
			mustLink(t, repo, sampleID, v, 0.5)
		}

		res, err := repo.DeleteSample(ctx, sampleID)
		if err != nil {
			t.Fatalf("%s: DeleteSample failed: %v", tt.name, err)
		}
		if !res.SampleDeleted {
			t.Errorf("%s: expected sample to be reported deleted", tt.name)
		}
		if res.LinksDeleted != int64(len(tt.links)) {
			t.Errorf("%s: expected %d links deleted, got %d", tt.name, len(tt.links), res.LinksDeleted)
		}

		if _, err := repo.GetSampleByID(ctx, sampleID); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected sample to be gone, got %v", tt.name, err)
		}
		links, _ := repo.GetLinksForSample(ctx, sampleID)
		if len(links) != 0 {
			t.Errorf("%s: expected no links left, got %d", tt.name, len(links))
		}
	}

	orphans, err := repo.CountOrphanedLinks(ctx)
	if err != nil {
		t.Fatalf("Failed to count orphans: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected no orphaned links, got %d", orphans)
	}

	rows, _ := repo.SamplesWithVariant(ctx, "rs80357906")
	if len(rows) != 1 || rows[0].SampleID != keeper {
		t.Errorf("Expected only the keeper sample to remain linked, got %+v", rows)
	}
}

func TestDeleteSampleMissing(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	res, err := repo.DeleteSample(context.Background(), 12345)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.SampleDeleted || res.LinksDeleted != 0 {
		t.Errorf("Expected nothing deleted, got %+v", res)
	}
}

// ============================================================================
// QUERIES
// ============================================================================

func TestPathogenicVariantsExactMatch(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "TP53")
	mustInsertVariant(t, repo, geneID, "v-path", "Pathogenic")
	mustInsertVariant(t, repo, geneID, "v-likely", "Likely Pathogenic")
	mustInsertVariant(t, repo, geneID, "v-lower", "pathogenic")
	mustInsertVariant(t, repo, geneID, "v-benign", "Benign")

	rows, err := repo.PathogenicVariants(ctx)
	if err != nil {
		t.Fatalf("PathogenicVariants failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 pathogenic variants, got %d: %+v", len(rows), rows)
	}
	if rows[0].VariantName != "v-path" || rows[1].VariantName != "v-likely" {
		t.Errorf("Unexpected pathogenic variants: %+v", rows)
	}
	for _, r := range rows {
		if r.GeneName != "TP53" {
			t.Errorf("Expected gene TP53, got %s", r.GeneName)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID, err := repo.InsertGene(ctx, "BRCA1", "17", "DNA repair, tumor suppressor")
	if err != nil || geneID != 1 {
		t.Fatalf("Expected gene id 1, got %d (%v)", geneID, err)
	}
	variantID, err := repo.InsertVariant(ctx, geneID, "rs80357906", 43091434, "SNP", "Pathogenic")
	if err != nil || variantID != 1 {
		t.Fatalf("Expected variant id 1, got %d (%v)", variantID, err)
	}
	sampleID, err := repo.InsertSample(ctx, "PATIENT001", "Blood", "2024-01-15")
	if err != nil || sampleID != 1 {
		t.Fatalf("Expected sample id 1, got %d (%v)", sampleID, err)
	}
	mustLink(t, repo, sampleID, variantID, 0.48)

	samples, err := repo.SamplesWithVariant(ctx, "rs80357906")
	if err != nil {
		t.Fatalf("SamplesWithVariant failed: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("Expected exactly one sample row, got %d", len(samples))
	}
	got := samples[0]
	if got.SampleID != 1 || got.PatientID != "PATIENT001" || got.TissueType != "Blood" || math.Abs(got.AlleleFrequency-0.48) > 1e-9 {
		t.Errorf("Unexpected sample row: %+v", got)
	}

	pathogenic, err := repo.PathogenicVariants(ctx)
	if err != nil {
		t.Fatalf("PathogenicVariants failed: %v", err)
	}
	found := false
	for _, r := range pathogenic {
		if r.GeneName == "BRCA1" && r.VariantName == "rs80357906" && r.ClinicalSignificance == "Pathogenic" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected (BRCA1, rs80357906, Pathogenic) in %+v", pathogenic)
	}

	variants, _ := repo.VariantsByGene(ctx, "BRCA1")
	if len(variants) != 1 || variants[0].Position != 43091434 {
		t.Errorf("Unexpected variants for BRCA1: %+v", variants)
	}
}

// ============================================================================
// AGGREGATES
// ============================================================================

func TestVariantCountsPerGene(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	brca1 := mustInsertGene(t, repo, "BRCA1")
	tp53 := mustInsertGene(t, repo, "TP53")
	mustInsertGene(t, repo, "EMPTY")
	mustInsertVariant(t, repo, brca1, "rs1", "Pathogenic")
	mustInsertVariant(t, repo, brca1, "rs2", "Pathogenic")
	mustInsertVariant(t, repo, tp53, "rs3", "Benign")

	counts, err := repo.VariantCountsPerGene(ctx)
	if err != nil {
		t.Fatalf("VariantCountsPerGene failed: %v", err)
	}

	totalGenes, _ := repo.TotalGenes(ctx)
	if len(counts) != totalGenes {
		t.Fatalf("Expected %d gene rows, got %d", totalGenes, len(counts))
	}

	seen := map[string]bool{}
	sum := 0
	for i, c := range counts {
		if seen[c.GeneName] {
			t.Errorf("Gene %s listed twice", c.GeneName)
		}
		seen[c.GeneName] = true
		sum += c.Count
		if i > 0 && counts[i-1].Count < c.Count {
			t.Errorf("Counts not descending at %d: %+v", i, counts)
		}
	}

	totalVariants, _ := repo.TotalVariants(ctx)
	if sum != totalVariants {
		t.Errorf("Counts sum to %d, expected %d", sum, totalVariants)
	}
	if counts[len(counts)-1].GeneName != "EMPTY" || counts[len(counts)-1].Count != 0 {
		t.Errorf("Expected EMPTY with 0 variants last, got %+v", counts[len(counts)-1])
	}
}

func TestAverageAlleleFrequencyPerVariant(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID := mustInsertGene(t, repo, "BRCA1")
	linked := mustInsertVariant(t, repo, geneID, "rs80357906", "Pathogenic")
	mustInsertVariant(t, repo, geneID, "rs-unlinked", "Benign")
	s1 := mustInsertSample(t, repo, "PATIENT001", "Blood")
	s2 := mustInsertSample(t, repo, "PATIENT001", "Tumor")
	mustLink(t, repo, s1, linked, 0.48)
	mustLink(t, repo, s2, linked, 0.92)

	avgs, err := repo.AverageAlleleFrequencyPerVariant(ctx)
	if err != nil {
		t.Fatalf("AverageAlleleFrequencyPerVariant failed: %v", err)
	}
	if len(avgs) != 1 {
		t.Fatalf("Expected only the linked variant, got %+v", avgs)
	}
	if avgs[0].VariantName != "rs80357906" {
		t.Errorf("Unexpected variant %s", avgs[0].VariantName)
	}
	if math.Abs(avgs[0].AverageFrequency-0.70) > 1e-9 {
		t.Errorf("Expected average 0.70, got %f", avgs[0].AverageFrequency)
	}
}
