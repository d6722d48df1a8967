// Package output renders pipeline results for the CLI and HTTP surfaces.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/clinseq/varank/internal/pipeline"
	"github.com/clinseq/varank/internal/vcf"
)

// Response is the external rendering of a pipeline run.
type Response struct {
	Success       bool                     `json:"success"`
	Message       string                   `json:"message"`
	TotalVariants int                      `json:"totalVariants"`
	TopVariants   []pipeline.ScoredVariant `json:"topVariants"`
	Summary       pipeline.Summary         `json:"summary"`
	Warnings      []string                 `json:"warnings,omitempty"`
}

// NewResponse builds the success response for a completed run, folding
// rejected-line diagnostics into the warnings list.
func NewResponse(res *pipeline.Result, diags []vcf.Diagnostic) Response {
	r := Response{
		Success:       true,
		Message:       fmt.Sprintf("Successfully processed %d variants", res.TotalVariants),
		TotalVariants: res.TotalVariants,
		TopVariants:   res.TopVariants,
		Summary:       res.Summary,
	}
	if r.TopVariants == nil {
		r.TopVariants = []pipeline.ScoredVariant{}
	}
	for _, d := range diags {
		r.Warnings = append(r.Warnings, d.String())
	}
	return r
}

// WriteJSON writes the response as indented JSON.
func WriteJSON(w io.Writer, resp Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
