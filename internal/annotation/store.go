package annotation

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultFrequency is the conservative (rare) frequency assigned when the
// reference table has no entry for an identifier.
const DefaultFrequency = 0.0001

// memoSize bounds the resolve memo. Real files repeat identifiers rarely, so
// a small cache is enough.
const memoSize = 4096

// rsPattern matches reference-style (dbSNP rs-number) identifiers.
var rsPattern = regexp.MustCompile(`^rs\d+$`)

// Tables holds the raw reference data a Store is built from.
type Tables struct {
	ClinVar              map[string]ClinVarStatus
	Frequency            map[string]float64
	GeneClinical         map[string]string
	CancerRiskGenes      []string
	PharmacogenomicGenes []string
	DefaultFrequency     float64 // 0 means DefaultFrequency
}

// Store resolves variant identifiers against immutable reference tables.
// It is safe for concurrent use after construction.
type Store struct {
	clinvar      map[string]ClinVarStatus
	frequency    map[string]float64
	geneClinical map[string]string
	cancerGenes  map[string]struct{}
	pharmaGenes  map[string]struct{}
	defaultFreq  float64
	memo         *lru.Cache[string, Annotation]
}

// NewStore creates a store backed by the built-in reference tables.
func NewStore() *Store {
	return NewStoreFromTables(Tables{
		ClinVar:              builtinClinVar(),
		Frequency:            builtinFrequencies(),
		GeneClinical:         builtinGeneClinical(),
		CancerRiskGenes:      builtinCancerRiskGenes(),
		PharmacogenomicGenes: builtinPharmacogenomicGenes(),
	})
}

// NewStoreFromTables creates a store from caller-supplied tables. The tables
// are not copied and must not be mutated afterwards.
func NewStoreFromTables(t Tables) *Store {
	s := &Store{
		clinvar:      t.ClinVar,
		frequency:    t.Frequency,
		geneClinical: t.GeneClinical,
		cancerGenes:  toGeneSet(t.CancerRiskGenes),
		pharmaGenes:  toGeneSet(t.PharmacogenomicGenes),
		defaultFreq:  t.DefaultFrequency,
	}
	if s.clinvar == nil {
		s.clinvar = map[string]ClinVarStatus{}
	}
	if s.frequency == nil {
		s.frequency = map[string]float64{}
	}
	if s.geneClinical == nil {
		s.geneClinical = map[string]string{}
	}
	if s.defaultFreq == 0 {
		s.defaultFreq = DefaultFrequency
	}
	// lru.New only fails for a non-positive size.
	s.memo, _ = lru.New[string, Annotation](memoSize)
	return s
}

func toGeneSet(genes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genes))
	for _, g := range genes {
		set[strings.ToUpper(g)] = struct{}{}
	}
	return set
}

// Resolve returns the clinical facts for a variant identifier. Identifiers
// absent from the reference table fall back deterministically: rs-style
// identifiers resolve to Uncertain, anything else (including no identifier)
// to Unknown, both with the conservative default frequency.
func (s *Store) Resolve(variantID string) Annotation {
	if variantID == "" {
		return Annotation{ClinVarStatus: ClinVarUnknown, PopulationFrequency: s.defaultFreq}
	}
	if a, ok := s.memo.Get(variantID); ok {
		return a
	}
	a := s.lookup(variantID)
	s.memo.Add(variantID, a)
	return a
}

func (s *Store) lookup(variantID string) Annotation {
	status, known := s.clinvar[variantID]
	if !known {
		if rsPattern.MatchString(variantID) {
			status = ClinVarUncertain
		} else {
			status = ClinVarUnknown
		}
	}

	freq, known := s.frequency[variantID]
	if !known {
		freq = s.defaultFreq
	}

	return Annotation{ClinVarStatus: status, PopulationFrequency: freq}
}

// IsCancerRiskGene reports whether the gene symbol is in the cancer-risk set.
// Matching is case-insensitive; an empty symbol never matches.
func (s *Store) IsCancerRiskGene(gene string) bool {
	if gene == "" {
		return false
	}
	_, ok := s.cancerGenes[strings.ToUpper(gene)]
	return ok
}

// IsPharmacogenomicGene reports whether the gene symbol is in the
// pharmacogenomic (drug response) set.
func (s *Store) IsPharmacogenomicGene(gene string) bool {
	if gene == "" {
		return false
	}
	_, ok := s.pharmaGenes[strings.ToUpper(gene)]
	return ok
}

// GeneClinicalInfo returns the clinical note for a gene symbol, or "".
func (s *Store) GeneClinicalInfo(gene string) string {
	if gene == "" {
		return ""
	}
	return s.geneClinical[strings.ToUpper(gene)]
}

// KnownVariants returns the number of identifiers in the ClinVar table.
func (s *Store) KnownVariants() int {
	return len(s.clinvar)
}
