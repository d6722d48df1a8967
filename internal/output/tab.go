package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/clinseq/varank/internal/pipeline"
)

// TabWriter writes ranked variants in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Variant_ID",
			"Gene",
			"Location",
			"Ref",
			"Alt",
			"Classification",
			"Score",
			"ClinVar",
			"Frequency",
			"IMPACT",
			"Clinical",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single ranked variant.
func (tw *TabWriter) Write(sv pipeline.ScoredVariant) error {
	gene := sv.Gene
	if gene == "" {
		gene = "-"
	}
	impact := sv.Impact
	if impact == "" {
		impact = "-"
	}
	clinical := sv.Clinical
	if clinical == "" {
		clinical = "-"
	}

	fields := []string{
		sv.VariantID,
		gene,
		fmt.Sprintf("%s:%d", sv.Chrom, sv.Pos),
		sv.Ref,
		sv.Alt,
		string(sv.Classification),
		fmt.Sprintf("%.1f", sv.SignificanceScore),
		string(sv.ClinVarStatus),
		fmt.Sprintf("%.4f", sv.PopulationFrequency),
		impact,
		clinical,
	}

	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	return err
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
