// Package seed populates a database with a small demonstration dataset
// of genes, variants, samples, and sample-variant links.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/genovar/internal/database"
	"github.com/thenoetrevino/genovar/internal/services/gene"
	"github.com/thenoetrevino/genovar/internal/services/sample"
	"github.com/thenoetrevino/genovar/internal/services/variant"
)

// Failure records one row of the dataset that could not be inserted
type Failure struct {
	Entity string // gene, variant, sample or link
	Key    string
	Err    error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s %s: %v", f.Entity, f.Key, f.Err)
}

// Result counts what a Load inserted
type Result struct {
	Genes    int
	Variants int
	Samples  int
	Links    int
	Failures []Failure
}

// Complete reports whether every row of the dataset was inserted
func (r *Result) Complete() bool {
	return len(r.Failures) == 0
}

// Loader inserts the dataset through the public services only
type Loader struct {
	genes    gene.Service
	variants variant.Service
	samples  sample.Service
}

// NewLoader creates a Loader over the given services
func NewLoader(genes gene.Service, variants variant.Service, samples sample.Service) *Loader {
	return &Loader{genes: genes, variants: variants, samples: samples}
}

// Load inserts the dataset. Rows that fail (for example duplicates on a
// second run) are collected in Result.Failures and dependent rows are
// skipped. A gene that already exists still takes its variants, so their
// duplicates are reported too. The only error returned is a cancelled context.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	res := &Result{}

	geneIDs := make(map[string]int, len(genes))
	for _, g := range genes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		id, err := l.genes.InsertGene(ctx, gene.InsertGeneRequest{
			Name:       g.name,
			Chromosome: g.chromosome,
			Function:   g.function,
		})
		if err != nil {
			res.fail("gene", g.name, err)
			if errors.Is(err, database.ErrDuplicateKey) {
				l.adoptExistingGene(ctx, g.name, geneIDs)
			}
			continue
		}
		geneIDs[g.name] = id
		res.Genes++
	}

	variantIDs := make(map[string]int, len(variants))
	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		geneID, ok := geneIDs[v.gene]
		if !ok {
			// Parent gene is neither new nor found
			continue
		}
		id, err := l.variants.InsertVariant(ctx, variant.InsertVariantRequest{
			GeneID:       geneID,
			Name:         v.name,
			Position:     v.position,
			MutationType: v.mutationType,
			Significance: v.significance,
		})
		if err != nil {
			res.fail("variant", v.name, err)
			continue
		}
		variantIDs[v.name] = id
		res.Variants++
	}

	sampleIDs := make(map[string]int, len(samples))
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		id, err := l.samples.InsertSample(ctx, sample.InsertSampleRequest{
			PatientID:      s.patientID,
			TissueType:     s.tissueType,
			CollectionDate: s.collectionDate,
		})
		if err != nil {
			res.fail("sample", s.key, err)
			continue
		}
		sampleIDs[s.key] = id
		res.Samples++
	}

	for _, lk := range links {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		sampleID, sok := sampleIDs[lk.sample]
		variantID, vok := variantIDs[lk.variant]
		if !sok || !vok {
			continue
		}
		_, err := l.samples.LinkVariant(ctx, sample.LinkVariantRequest{
			SampleID:        sampleID,
			VariantID:       variantID,
			AlleleFrequency: lk.alleleFrequency,
		})
		if err != nil {
			res.fail("link", lk.sample+"->"+lk.variant, err)
			continue
		}
		res.Links++
	}

	slog.Info("sample data loaded",
		"genes", res.Genes,
		"variants", res.Variants,
		"samples", res.Samples,
		"links", res.Links,
		"failures", len(res.Failures),
	)
	return res, nil
}

// adoptExistingGene maps name to the id of the gene already stored under it
func (l *Loader) adoptExistingGene(ctx context.Context, name string, geneIDs map[string]int) {
	existing, err := l.genes.GetGeneByName(ctx, name)
	if err != nil {
		slog.Warn("existing gene lookup failed", "name", name, "error", err)
		return
	}
	geneIDs[name] = existing.ID
}

func (r *Result) fail(entity, key string, err error) {
	slog.Warn("seed row skipped", "entity", entity, "key", key, "error", err)
	r.Failures = append(r.Failures, Failure{Entity: entity, Key: key, Err: err})
}
