package pipeline

import (
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"

	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/classify"
	"github.com/clinseq/varank/internal/vcf"
)

// DefaultTopN is the number of top-ranked variants reported when not
// configured otherwise.
const DefaultTopN = 10

// Pipeline runs the annotate → classify → score → rank sequence over a
// variant stream. A Pipeline holds no per-run state and can be reused.
type Pipeline struct {
	store   *annotation.Store
	engine  *classify.Engine
	scorer  *classify.Scorer
	topN    int
	workers int
	logger  *zap.Logger
}

// New creates a pipeline backed by the given annotation store and
// classification thresholds.
func New(store *annotation.Store, cfg classify.Config) *Pipeline {
	return &Pipeline{
		store:  store,
		engine: classify.NewEngine(cfg, store),
		scorer: classify.NewScorer(store),
		topN:   DefaultTopN,
		logger: zap.NewNop(),
	}
}

// SetTopN configures how many top-ranked variants the result carries.
// Non-positive values reset to the default.
func (p *Pipeline) SetTopN(n int) {
	if n <= 0 {
		n = DefaultTopN
	}
	p.topN = n
}

// SetWorkers configures the worker pool size. 0 means one worker per CPU.
func (p *Pipeline) SetWorkers(n int) {
	p.workers = n
}

// SetLogger sets the logger for progress and warning messages.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Engine returns the classification engine, for rule reporting.
func (p *Pipeline) Engine() *classify.Engine {
	return p.engine
}

// process annotates, classifies and scores one variant. Pure: the same
// variant always yields the same ScoredVariant.
func (p *Pipeline) process(v *vcf.Variant) ScoredVariant {
	ann := p.store.Resolve(v.ID)
	av := classify.AnnotatedVariant{Variant: v, Annotation: ann}
	c := p.engine.Classify(av)
	score := p.scorer.Score(av, c)

	clinical := v.Clinical()
	if clinical == "" {
		clinical = p.store.GeneClinicalInfo(v.Gene())
	}

	return ScoredVariant{
		VariantID:           v.VariantID(),
		Gene:                v.Gene(),
		Chrom:               v.Chrom,
		Pos:                 v.Pos,
		Ref:                 v.Ref,
		Alt:                 v.Alt,
		ClinVarStatus:       ann.ClinVarStatus,
		PopulationFrequency: ann.PopulationFrequency,
		Classification:      c,
		SignificanceScore:   score,
		Impact:              v.Impact(),
		Clinical:            clinical,
	}
}

// Run consumes all variants from the source and produces the aggregated,
// ranked result. Zero variants is a valid run with empty output. Only a
// failing source read aborts the run.
func (p *Pipeline) Run(src vcf.VariantSource) (*Result, error) {
	items := make(chan workItem, 2*runtime.NumCPU())
	var readErr error

	go func() {
		defer close(items)
		seq := 0
		for {
			v, err := src.Next()
			if err != nil {
				readErr = fmt.Errorf("read variant: %w", err)
				return
			}
			if v == nil {
				return
			}
			items <- workItem{Seq: seq, Variant: v}
			seq++
		}
	}()

	results := p.parallelProcess(items, p.workers)

	var scored []ScoredVariant
	if err := orderedCollect(results, func(r workResult) error {
		scored = append(scored, r.Scored)
		return nil
	}); err != nil {
		return nil, err
	}

	if readErr != nil {
		return nil, readErr
	}

	summary := p.summarize(scored)
	top := p.rank(scored)

	p.logger.Info("pipeline run complete",
		zap.Int("variants", len(scored)),
		zap.Int("top", len(top)))

	return &Result{
		TotalVariants: len(scored),
		TopVariants:   top,
		Summary:       summary,
	}, nil
}

// summarize aggregates counts over all processed variants. Gene uniqueness
// is a case-sensitive exact match; variants without a gene are excluded.
func (p *Pipeline) summarize(scored []ScoredVariant) Summary {
	s := Summary{TotalVariants: len(scored)}
	genes := make(map[string]struct{})

	for _, sv := range scored {
		switch sv.Classification {
		case classify.LikelyPathogenic:
			s.PathogenicVariants++
		case classify.LikelyBenign:
			s.BenignVariants++
		default:
			s.UncertainVariants++
		}

		if sv.Impact == vcf.ImpactHigh {
			s.HighImpactVariants++
		}
		if p.store.IsPharmacogenomicGene(sv.Gene) {
			s.DrugResponseVariants++
		}
		if sv.Gene != "" {
			genes[sv.Gene] = struct{}{}
		}
	}

	s.UniqueGenes = len(genes)
	return s
}

// rank sorts a copy of the scored variants by descending score with the full
// tie-break chain (classification priority, rarer frequency first, input
// order) and truncates to the configured top-N.
func (p *Pipeline) rank(scored []ScoredVariant) []ScoredVariant {
	ranked := make([]ScoredVariant, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.SignificanceScore != b.SignificanceScore {
			return a.SignificanceScore > b.SignificanceScore
		}
		pa, pb := classify.Priority(a.Classification), classify.Priority(b.Classification)
		if pa != pb {
			return pa > pb
		}
		return a.PopulationFrequency < b.PopulationFrequency
	})

	if len(ranked) > p.topN {
		ranked = ranked[:p.topN]
	}
	return ranked
}
