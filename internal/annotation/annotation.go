// Package annotation resolves variant identifiers to clinical-significance
// and population-frequency facts from static reference tables.
package annotation

// ClinVarStatus is the clinical significance label sourced from the
// reference table.
type ClinVarStatus string

const (
	ClinVarPathogenic       ClinVarStatus = "Pathogenic"
	ClinVarLikelyPathogenic ClinVarStatus = "Likely Pathogenic"
	ClinVarUncertain        ClinVarStatus = "Uncertain"
	ClinVarLikelyBenign     ClinVarStatus = "Likely Benign"
	ClinVarBenign           ClinVarStatus = "Benign"
	ClinVarUnknown          ClinVarStatus = "Unknown"
)

// ParseClinVarStatus parses a status string from external reference data.
func ParseClinVarStatus(s string) (ClinVarStatus, bool) {
	switch ClinVarStatus(s) {
	case ClinVarPathogenic, ClinVarLikelyPathogenic, ClinVarUncertain,
		ClinVarLikelyBenign, ClinVarBenign, ClinVarUnknown:
		return ClinVarStatus(s), true
	}
	return "", false
}

// IsPathogenic reports whether the status is Pathogenic or Likely Pathogenic.
func (s ClinVarStatus) IsPathogenic() bool {
	return s == ClinVarPathogenic || s == ClinVarLikelyPathogenic
}

// Annotation holds the facts resolved for one variant identifier.
type Annotation struct {
	ClinVarStatus       ClinVarStatus
	PopulationFrequency float64 // fraction of the reference population, in [0,1]
}
