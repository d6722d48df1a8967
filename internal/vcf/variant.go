// Package vcf provides streaming VCF file parsing.
package vcf

import (
	"fmt"
	"strings"
)

// Impact levels carried in the INFO IMPACT key.
const (
	ImpactHigh     = "HIGH"
	ImpactModerate = "MODERATE"
	ImpactLow      = "LOW"
	ImpactModifier = "MODIFIER"
)

// Variant represents a single genomic variant from a VCF data line.
// Variants are constructed by the parser and not modified afterwards.
type Variant struct {
	Chrom   string                 // Chromosome name (e.g., "12", "chr12")
	Pos     int64                  // 1-based genomic position
	ID      string                 // Variant identifier (e.g., rs ID); empty if the field was "."
	Ref     string                 // Reference allele
	Alt     string                 // Alternate allele
	Qual    float64                // Quality score; only meaningful when HasQual is true
	HasQual bool                   // False when the QUAL field was "."
	Filter  string                 // Filter status (PASS or filter name)
	Info    map[string]interface{} // INFO field key-value pairs; flags map to true
}

// VariantID returns the external identifier, or a synthesized
// chrom_pos_ref_alt placeholder when the ID field was absent.
func (v *Variant) VariantID() string {
	if v.ID != "" {
		return v.ID
	}
	return fmt.Sprintf("%s_%d_%s_%s", v.Chrom, v.Pos, v.Ref, v.Alt)
}

// Gene returns the gene symbol from the INFO GENE key, or "".
func (v *Variant) Gene() string {
	return v.infoString("GENE")
}

// Impact returns the normalized impact level from the INFO IMPACT key.
// Returns "" when the key is absent or not a recognized level.
func (v *Variant) Impact() string {
	return ParseImpact(v.infoString("IMPACT"))
}

// Clinical returns the clinical note from the INFO CLINICAL key, or "".
func (v *Variant) Clinical() string {
	return v.infoString("CLINICAL")
}

func (v *Variant) infoString(key string) string {
	if s, ok := v.Info[key].(string); ok {
		return s
	}
	return ""
}

// ParseImpact normalizes an impact string to one of the Impact constants.
// "MOD" is accepted as an alias for MODERATE. Unknown values map to "".
func ParseImpact(s string) string {
	switch strings.ToUpper(s) {
	case "HIGH":
		return ImpactHigh
	case "MODERATE", "MOD":
		return ImpactModerate
	case "LOW":
		return ImpactLow
	case "MODIFIER":
		return ImpactModifier
	}
	return ""
}

// IsSNV returns true if the variant is a single nucleotide variant.
func (v *Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1
}

// IsIndel returns true if the variant is an insertion or deletion.
func (v *Variant) IsIndel() bool {
	return len(v.Ref) != len(v.Alt)
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (v *Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}
