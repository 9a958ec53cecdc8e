package database

import (
	"context"
	"strings"
	"testing"

	"github.com/thenoetrevino/genovar/internal/models"
)

// Rows written outside the repositories may leave optional columns NULL
func TestQueriesCoalesceNullColumns(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	stmts := []string{
		`INSERT INTO genes (gene_id, gene_name) VALUES (1, 'BARE')`,
		`INSERT INTO variants (variant_id, gene_id, variant_name) VALUES (1, 1, 'rsNULL')`,
		`INSERT INTO samples (sample_id, patient_id) VALUES (1, 'PATIENT009')`,
		`INSERT INTO sample_variants (sample_id, variant_id) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to insert fixture: %v", err)
		}
	}

	variants, err := repo.VariantsByGene(ctx, "BARE")
	if err != nil {
		t.Fatalf("VariantsByGene failed: %v", err)
	}
	if len(variants) != 1 || variants[0].Position != 0 || variants[0].MutationType != "" {
		t.Errorf("Expected one variant with zero values, got %+v", variants)
	}

	samples, err := repo.SamplesWithVariant(ctx, "rsNULL")
	if err != nil {
		t.Fatalf("SamplesWithVariant failed: %v", err)
	}
	if len(samples) != 1 || samples[0].TissueType != "" || samples[0].AlleleFrequency != 0 {
		t.Errorf("Expected one sample with zero values, got %+v", samples)
	}

	freqs, err := repo.AverageAlleleFrequencyPerVariant(ctx)
	if err != nil {
		t.Fatalf("AverageAlleleFrequencyPerVariant failed: %v", err)
	}
	if len(freqs) != 1 || freqs[0].AverageFrequency != 0 {
		t.Errorf("Expected a zero average for NULL frequencies, got %+v", freqs)
	}
}

func TestQueriesReturnEmptyNotNil(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	variants, err := repo.VariantsByGene(ctx, "NONE")
	if err != nil || variants == nil || len(variants) != 0 {
		t.Errorf("VariantsByGene = %v, %v; want empty slice", variants, err)
	}
	pathogenic, err := repo.PathogenicVariants(ctx)
	if err != nil || pathogenic == nil || len(pathogenic) != 0 {
		t.Errorf("PathogenicVariants = %v, %v; want empty slice", pathogenic, err)
	}
	samples, err := repo.SamplesWithVariant(ctx, "NONE")
	if err != nil || samples == nil || len(samples) != 0 {
		t.Errorf("SamplesWithVariant = %v, %v; want empty slice", samples, err)
	}
	counts, err := repo.VariantCountsPerGene(ctx)
	if err != nil || counts == nil || len(counts) != 0 {
		t.Errorf("VariantCountsPerGene = %v, %v; want empty slice", counts, err)
	}
}

func TestVariantsClassifiedAsExpandsEveryValue(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	geneID, err := repo.InsertGene(ctx, "BRCA1", "17", "")
	if err != nil {
		t.Fatalf("InsertGene failed: %v", err)
	}
	for _, v := range []struct{ name, significance string }{
		{"rs1", "Pathogenic"},
		{"rs2", "Benign"},
		{"rs3", "Uncertain"},
		{"rs4", "Likely Pathogenic"},
	} {
		if _, err := repo.InsertVariant(ctx, geneID, v.name, 1, "SNP", v.significance); err != nil {
			t.Fatalf("InsertVariant(%s) failed: %v", v.name, err)
		}
	}

	tests := []struct {
		significances []string
		want          []string
	}{
		{[]string{"Benign"}, []string{"rs2"}},
		{[]string{"Uncertain", "Pathogenic", "Benign"}, []string{"rs1", "rs2", "rs3"}},
		{nil, []string{}},
	}
	for _, tt := range tests {
		rows, err := repo.variantsClassifiedAs(ctx, tt.significances)
		if err != nil {
			t.Fatalf("variantsClassifiedAs(%v) failed: %v", tt.significances, err)
		}
		if rows == nil {
			t.Fatalf("variantsClassifiedAs(%v) returned nil", tt.significances)
		}
		got := make([]string, 0, len(rows))
		for _, row := range rows {
			got = append(got, row.VariantName)
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("variantsClassifiedAs(%v) = %v, want %v", tt.significances, got, tt.want)
		}
	}

	pathogenic, err := repo.PathogenicVariants(ctx)
	if err != nil {
		t.Fatalf("PathogenicVariants failed: %v", err)
	}
	if len(pathogenic) != len(models.PathogenicSignificances) {
		t.Errorf("Expected one variant per pathogenic class, got %+v", pathogenic)
	}
}
