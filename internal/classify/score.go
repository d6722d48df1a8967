package classify

import (
	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/vcf"
)

// Score weights. Each component reads a disjoint field, so the total is
// independent of evaluation order.
const (
	scoreLikelyPathogenic = 100.0
	scoreUncertain        = 50.0
	scoreLikelyBenign     = 10.0

	scoreClinVarPathogenic       = 50.0
	scoreClinVarLikelyPathogenic = 30.0
	scoreClinVarUncertain        = 10.0
	scoreClinVarLikelyBenign     = 5.0

	scoreImpactHigh     = 40.0
	scoreImpactModerate = 20.0
	scoreImpactLow      = 5.0

	// rarityMax bounds the rarity component: rarityMax*(1-frequency) is
	// strictly decreasing in frequency and stays within [0, rarityMax].
	rarityMax = 30.0

	scoreCancerRiskGene      = 25.0
	scorePharmacogenomicGene = 15.0
)

// Scorer computes significance scores for classified variants.
type Scorer struct {
	genes GeneSets
}

// NewScorer creates a scorer using the given gene-category sets.
func NewScorer(genes GeneSets) *Scorer {
	return &Scorer{genes: genes}
}

// Score computes the significance score as a sum of additive components:
// classification base, ClinVar contribution, impact contribution, rarity,
// and gene-category bonuses (cumulative when a gene is in both sets).
func (s *Scorer) Score(av AnnotatedVariant, c Classification) float64 {
	score := 0.0

	switch c {
	case LikelyPathogenic:
		score += scoreLikelyPathogenic
	case Uncertain:
		score += scoreUncertain
	case LikelyBenign:
		score += scoreLikelyBenign
	}

	switch av.Annotation.ClinVarStatus {
	case annotation.ClinVarPathogenic:
		score += scoreClinVarPathogenic
	case annotation.ClinVarLikelyPathogenic:
		score += scoreClinVarLikelyPathogenic
	case annotation.ClinVarUncertain:
		score += scoreClinVarUncertain
	case annotation.ClinVarLikelyBenign:
		score += scoreClinVarLikelyBenign
	}

	switch av.Variant.Impact() {
	case vcf.ImpactHigh:
		score += scoreImpactHigh
	case vcf.ImpactModerate:
		score += scoreImpactModerate
	case vcf.ImpactLow:
		score += scoreImpactLow
	}

	score += rarityMax * (1 - av.Annotation.PopulationFrequency)

	gene := av.Variant.Gene()
	if s.genes.IsCancerRiskGene(gene) {
		score += scoreCancerRiskGene
	}
	if s.genes.IsPharmacogenomicGene(gene) {
		score += scorePharmacogenomicGene
	}

	return score
}
