// Package classify applies ordered deterministic rules to annotated variants
// and scores them for ranking.
package classify

import (
	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/vcf"
)

// Classification is the label produced by the rule engine.
type Classification string

const (
	LikelyPathogenic Classification = "Likely Pathogenic"
	Uncertain        Classification = "Uncertain"
	LikelyBenign     Classification = "Likely Benign"
)

// Priority orders classifications for ranking tie-breaks.
// Likely Pathogenic > Uncertain > Likely Benign.
func Priority(c Classification) int {
	switch c {
	case LikelyPathogenic:
		return 2
	case Uncertain:
		return 1
	}
	return 0
}

// AnnotatedVariant pairs a parsed variant with its resolved reference facts.
type AnnotatedVariant struct {
	Variant    *vcf.Variant
	Annotation annotation.Annotation
}

// GeneSets answers gene-category membership queries. The annotation store
// implements it.
type GeneSets interface {
	IsCancerRiskGene(gene string) bool
	IsPharmacogenomicGene(gene string) bool
}

// Config holds the frequency thresholds the rules compare against.
type Config struct {
	PathogenicFreq float64 // below this a variant counts as rare
	BenignFreq     float64 // above this a variant counts as common
	ModerateFreq   float64 // at or above this, low-impact variants lean benign
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		PathogenicFreq: 0.01,
		BenignFreq:     0.05,
		ModerateFreq:   0.01,
	}
}

// RuleInfo describes one classification rule for reporting.
type RuleInfo struct {
	Name           string         `json:"rule"`
	Condition      string         `json:"condition"`
	Classification Classification `json:"classification"`
}

type rule struct {
	info    RuleInfo
	matches func(av AnnotatedVariant) bool
}

// Engine classifies annotated variants by evaluating an ordered rule list,
// first match wins. Classification is a pure function of the input.
type Engine struct {
	cfg   Config
	genes GeneSets
	rules []rule
}

// NewEngine creates a rule engine with the given thresholds and gene sets.
func NewEngine(cfg Config, genes GeneSets) *Engine {
	e := &Engine{cfg: cfg, genes: genes}
	e.rules = []rule{
		{
			info: RuleInfo{
				Name:           "Pathogenic with low frequency",
				Condition:      "frequency < pathogenic threshold AND ClinVar is Pathogenic/Likely Pathogenic",
				Classification: LikelyPathogenic,
			},
			matches: func(av AnnotatedVariant) bool {
				return av.Annotation.PopulationFrequency < cfg.PathogenicFreq &&
					av.Annotation.ClinVarStatus.IsPathogenic()
			},
		},
		{
			info: RuleInfo{
				Name:           "High impact pathogenic",
				Condition:      "HIGH impact AND frequency < pathogenic threshold",
				Classification: LikelyPathogenic,
			},
			matches: func(av AnnotatedVariant) bool {
				return av.Variant.Impact() == vcf.ImpactHigh &&
					av.Annotation.PopulationFrequency < cfg.PathogenicFreq
			},
		},
		{
			info: RuleInfo{
				Name:           "Cancer risk gene",
				Condition:      "cancer risk gene AND ClinVar is Pathogenic/Likely Pathogenic",
				Classification: LikelyPathogenic,
			},
			matches: func(av AnnotatedVariant) bool {
				return genes.IsCancerRiskGene(av.Variant.Gene()) &&
					av.Annotation.ClinVarStatus.IsPathogenic()
			},
		},
		{
			info: RuleInfo{
				Name:           "High frequency benign",
				Condition:      "frequency > benign threshold",
				Classification: LikelyBenign,
			},
			matches: func(av AnnotatedVariant) bool {
				return av.Annotation.PopulationFrequency > cfg.BenignFreq
			},
		},
		{
			info: RuleInfo{
				Name:           "Benign ClinVar status",
				Condition:      "ClinVar is Benign",
				Classification: LikelyBenign,
			},
			matches: func(av AnnotatedVariant) bool {
				return av.Annotation.ClinVarStatus == annotation.ClinVarBenign
			},
		},
		{
			info: RuleInfo{
				Name:           "Low impact with moderate frequency",
				Condition:      "LOW/MODIFIER impact AND frequency >= moderate threshold",
				Classification: LikelyBenign,
			},
			matches: func(av AnnotatedVariant) bool {
				impact := av.Variant.Impact()
				return (impact == vcf.ImpactLow || impact == vcf.ImpactModifier) &&
					av.Annotation.PopulationFrequency >= cfg.ModerateFreq
			},
		},
		{
			info: RuleInfo{
				Name:           "Default",
				Condition:      "all other cases",
				Classification: Uncertain,
			},
			matches: func(AnnotatedVariant) bool { return true },
		},
	}
	return e
}

// Classify returns the classification for an annotated variant. The terminal
// default rule guarantees exactly one label for every input.
func (e *Engine) Classify(av AnnotatedVariant) Classification {
	for _, r := range e.rules {
		if r.matches(av) {
			return r.info.Classification
		}
	}
	return Uncertain // unreachable, the default rule always matches
}

// Rules returns the rule descriptions in evaluation order.
func (e *Engine) Rules() []RuleInfo {
	infos := make([]RuleInfo, len(e.rules))
	for i, r := range e.rules {
		infos[i] = r.info
	}
	return infos
}

// Config returns the thresholds the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}
