package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/thenoetrevino/genovar/internal/cli/styles"
	"github.com/thenoetrevino/genovar/internal/services/gene"
	"github.com/thenoetrevino/genovar/internal/services/sample"
	"github.com/thenoetrevino/genovar/internal/services/variant"
)

// action is one numbered menu entry. op names the operation in error lines.
type action struct {
	key   string
	label string
	op    string
	run   func(ctx context.Context, s *Session) error
}

var actions = []action{
	{"1", "Insert new gene", "insert gene", insertGene},
	{"2", "Insert new variant", "insert variant", insertVariant},
	{"3", "Insert new sample", "insert sample", insertSample},
	{"4", "Link sample to variant", "link sample to variant", linkSampleVariant},
	{"5", "Update variant clinical significance", "update variant significance", updateSignificance},
	{"6", "Delete a sample", "delete sample", deleteSample},
	{"7", "Query: Show all variants in a gene", "query variants by gene", variantsByGene},
	{"8", "Query: Show all pathogenic variants", "query pathogenic variants", pathogenicVariants},
	{"9", "Query: Show samples containing a specific variant", "query samples with variant", samplesWithVariant},
	{"10", "Show database statistics", "statistics", statistics},
	{"11", "Populate database with sample data", "populate sample data", populate},
}

func lookupAction(key string) (action, bool) {
	for _, act := range actions {
		if act.key == key {
			return act, true
		}
	}
	return action{}, false
}

func formatFrequency(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func insertGene(ctx context.Context, s *Session) error {
	name, err := s.prompt.text("Enter gene name (e.g., BRCA1)")
	if err != nil {
		return err
	}
	chromosome, err := s.prompt.text("Enter chromosome (e.g., 17)")
	if err != nil {
		return err
	}
	function, err := s.prompt.text("Enter gene function")
	if err != nil {
		return err
	}

	id, err := s.app.GeneService.InsertGene(ctx, gene.InsertGeneRequest{
		Name:       name,
		Chromosome: chromosome,
		Function:   function,
	})
	if err != nil {
		return err
	}
	s.output.Success("Inserted gene: %s (ID: %d)", name, id)
	return nil
}

func insertVariant(ctx context.Context, s *Session) error {
	geneID, err := s.prompt.integer("Enter gene ID", "gene ID")
	if err != nil {
		return err
	}
	name, err := s.prompt.text("Enter variant name (e.g., rs123456)")
	if err != nil {
		return err
	}
	position, err := s.prompt.integer64("Enter chromosome position", "position")
	if err != nil {
		return err
	}
	mutationType, err := s.prompt.text("Enter mutation type (SNP/Insertion/Deletion)")
	if err != nil {
		return err
	}
	significance, err := s.prompt.text("Enter clinical significance")
	if err != nil {
		return err
	}

	id, err := s.app.VariantService.InsertVariant(ctx, variant.InsertVariantRequest{
		GeneID:       geneID,
		Name:         name,
		Position:     position,
		MutationType: mutationType,
		Significance: significance,
	})
	if err != nil {
		return err
	}
	s.output.Success("Inserted variant: %s (ID: %d)", name, id)
	return nil
}

func insertSample(ctx context.Context, s *Session) error {
	patientID, err := s.prompt.text("Enter patient ID")
	if err != nil {
		return err
	}
	tissueType, err := s.prompt.text("Enter tissue type")
	if err != nil {
		return err
	}
	collectionDate, err := s.prompt.text("Enter collection date (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	id, err := s.app.SampleService.InsertSample(ctx, sample.InsertSampleRequest{
		PatientID:      patientID,
		TissueType:     tissueType,
		CollectionDate: collectionDate,
	})
	if err != nil {
		return err
	}
	s.output.Success("Inserted sample: %s - %s (ID: %d)", patientID, tissueType, id)
	return nil
}

func linkSampleVariant(ctx context.Context, s *Session) error {
	sampleID, err := s.prompt.integer("Enter sample ID", "sample ID")
	if err != nil {
		return err
	}
	variantID, err := s.prompt.integer("Enter variant ID", "variant ID")
	if err != nil {
		return err
	}
	af, err := s.prompt.decimal("Enter allele frequency (0.0-1.0)", "allele frequency")
	if err != nil {
		return err
	}

	if _, err := s.app.SampleService.LinkVariant(ctx, sample.LinkVariantRequest{
		SampleID:        sampleID,
		VariantID:       variantID,
		AlleleFrequency: af,
	}); err != nil {
		return err
	}
	s.output.Success("Linked Sample %d to Variant %d (AF: %s)", sampleID, variantID, formatFrequency(af))
	return nil
}

func updateSignificance(ctx context.Context, s *Session) error {
	variantID, err := s.prompt.integer("Enter variant ID to update", "variant ID")
	if err != nil {
		return err
	}
	significance, err := s.prompt.text("Enter new clinical significance")
	if err != nil {
		return err
	}

	n, err := s.app.VariantService.UpdateSignificance(ctx, variant.UpdateSignificanceRequest{
		VariantID:    variantID,
		Significance: significance,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		s.output.Warning("No variant with ID %d, nothing updated", variantID)
		return nil
	}
	s.output.Success("Updated Variant %d significance to: %s", variantID, styles.RenderSignificance(significance))
	return nil
}

func deleteSample(ctx context.Context, s *Session) error {
	sampleID, err := s.prompt.integer("Enter sample ID to delete", "sample ID")
	if err != nil {
		return err
	}

	res, err := s.app.SampleService.DeleteSample(ctx, sampleID)
	if err != nil {
		return err
	}
	if !res.SampleDeleted {
		s.output.Warning("No sample with ID %d, nothing deleted", sampleID)
		return nil
	}
	s.output.Success("Deleted Sample %d and its associations (%d links)", sampleID, res.LinksDeleted)
	return nil
}

func variantsByGene(ctx context.Context, s *Session) error {
	name, err := s.prompt.text("Enter gene name")
	if err != nil {
		return err
	}

	rows, err := s.app.QueryService.VariantsByGene(ctx, name)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		s.output.Empty("No variants found for gene: %s", name)
		return nil
	}

	s.output.Header("Variants in Gene: %s", name)
	for _, r := range rows {
		s.output.Info("  ID: %d | Name: %s | Position: %d | Type: %s | Significance: %s",
			r.VariantID, r.Name, r.Position, r.MutationType, styles.RenderSignificance(r.ClinicalSignificance))
	}
	s.output.Info("Total: %d variants", len(rows))
	return nil
}

func pathogenicVariants(ctx context.Context, s *Session) error {
	rows, err := s.app.QueryService.PathogenicVariants(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		s.output.Empty("No pathogenic variants found")
		return nil
	}

	s.output.Header("Pathogenic Variants")
	for _, r := range rows {
		s.output.Info("  Variant ID: %d | Gene: %s | Name: %s | Significance: %s",
			r.VariantID, r.GeneName, r.VariantName, styles.RenderSignificance(r.ClinicalSignificance))
	}
	s.output.Info("Total: %d pathogenic variants", len(rows))
	return nil
}

func samplesWithVariant(ctx context.Context, s *Session) error {
	name, err := s.prompt.text("Enter variant name")
	if err != nil {
		return err
	}

	rows, err := s.app.QueryService.SamplesWithVariant(ctx, name)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		s.output.Empty("No samples found with variant: %s", name)
		return nil
	}

	s.output.Header("Samples Containing Variant: %s", name)
	for _, r := range rows {
		s.output.Info("  Sample ID: %d | Patient: %s | Tissue: %s | Allele Freq: %s",
			r.SampleID, r.PatientID, r.TissueType, formatFrequency(r.AlleleFrequency))
	}
	s.output.Info("Total: %d samples", len(rows))
	return nil
}

func statistics(ctx context.Context, s *Session) error {
	report, err := s.app.StatsService.Report(ctx)
	if err != nil {
		return err
	}

	s.output.Header("DATABASE STATISTICS")

	fmt.Fprintln(s.out)
	s.output.Info("Variants per Gene:")
	counts := s.newTable("Gene", "Variants")
	for _, c := range report.VariantCounts {
		counts.Append([]string{c.GeneName, strconv.Itoa(c.Count)})
	}
	counts.Render()

	fmt.Fprintln(s.out)
	s.output.Info("Average Allele Frequency by Variant:")
	freqs := s.newTable("Variant", "Avg Allele Freq")
	for _, f := range report.AverageFrequencies {
		freqs.Append([]string{f.VariantName, strconv.FormatFloat(f.AverageFrequency, 'f', 3, 64)})
	}
	freqs.Render()

	fmt.Fprintln(s.out)
	s.output.Info("Total Samples in Database: %d", report.Totals.Samples)
	s.output.Info("Total Genes in Database: %d", report.Totals.Genes)
	s.output.Info("Total Variants in Database: %d", report.Totals.Variants)
	if report.OrphanedLinks > 0 {
		s.output.Warning("%d sample-variant links point at a missing sample or variant", report.OrphanedLinks)
	}
	return nil
}

// newTable starts a bordered result table on the session output
func (s *Session) newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(s.out)
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = styles.HeaderStyle.Render(h)
	}
	table.SetHeader(styled)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func populate(ctx context.Context, s *Session) error {
	s.output.Header("POPULATING DATABASE WITH SAMPLE DATA")

	res, err := s.app.Seeder.Load(ctx)
	if err != nil {
		return err
	}

	s.output.Info("Genes: %d | Variants: %d | Samples: %d | Links: %d",
		res.Genes, res.Variants, res.Samples, res.Links)
	for _, f := range res.Failures {
		s.output.Warning("Skipped %s", f.String())
	}
	if res.Complete() {
		s.output.Success("Sample data populated successfully!")
		return nil
	}
	s.output.Warning("Sample data populated with %d skipped rows", len(res.Failures))
	return nil
}
