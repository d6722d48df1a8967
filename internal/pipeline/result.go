// Package pipeline orchestrates parsing, annotation, classification and
// scoring into a ranked result.
package pipeline

import (
	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/classify"
)

// ScoredVariant is one fully processed variant, ready for ranking and
// presentation. JSON tags follow the external API rendering.
type ScoredVariant struct {
	VariantID           string                   `json:"variantId"`
	Gene                string                   `json:"gene,omitempty"`
	Chrom               string                   `json:"chrom"`
	Pos                 int64                    `json:"pos"`
	Ref                 string                   `json:"ref"`
	Alt                 string                   `json:"alt"`
	ClinVarStatus       annotation.ClinVarStatus `json:"clinvarStatus"`
	PopulationFrequency float64                  `json:"populationFrequency"`
	Classification      classify.Classification  `json:"classification"`
	SignificanceScore   float64                  `json:"significanceScore"`
	Impact              string                   `json:"impact,omitempty"`
	Clinical            string                   `json:"clinical,omitempty"`
}

// Summary aggregates counts over every processed variant in one input file.
type Summary struct {
	TotalVariants        int `json:"totalVariants"`
	PathogenicVariants   int `json:"pathogenicVariants"`
	BenignVariants       int `json:"benignVariants"`
	UncertainVariants    int `json:"uncertainVariants"`
	HighImpactVariants   int `json:"highImpactVariants"`
	DrugResponseVariants int `json:"drugResponseVariants"`
	UniqueGenes          int `json:"uniqueGenes"`
}

// Result is the output of one pipeline run. Empty input yields a valid
// Result with zero counts and an empty top list.
type Result struct {
	TotalVariants int             `json:"totalVariants"`
	TopVariants   []ScoredVariant `json:"topVariants"`
	Summary       Summary         `json:"summary"`
}
