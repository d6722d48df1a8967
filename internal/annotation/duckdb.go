package annotation

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// LoadDuckDB builds a Store from a DuckDB reference database. The database
// must carry two tables:
//
//	annotations(variant_id VARCHAR, clinvar_status VARCHAR, population_frequency DOUBLE)
//	genes(symbol VARCHAR, category VARCHAR, clinical VARCHAR)
//
// where category is "cancer_risk", "pharmacogenomic" or empty. The whole
// reference set is read into memory once; the database is closed before
// returning.
func LoadDuckDB(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	t := Tables{
		ClinVar:      map[string]ClinVarStatus{},
		Frequency:    map[string]float64{},
		GeneClinical: map[string]string{},
	}

	if err := loadAnnotationRows(db, &t); err != nil {
		return nil, err
	}
	if err := loadGeneRows(db, &t); err != nil {
		return nil, err
	}

	return NewStoreFromTables(t), nil
}

func loadAnnotationRows(db *sql.DB, t *Tables) error {
	rows, err := db.Query(`SELECT variant_id, clinvar_status, population_frequency FROM annotations`)
	if err != nil {
		return fmt.Errorf("query annotations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, statusStr string
		var freq float64
		if err := rows.Scan(&id, &statusStr, &freq); err != nil {
			return fmt.Errorf("scan annotation row: %w", err)
		}
		status, ok := ParseClinVarStatus(statusStr)
		if !ok {
			return fmt.Errorf("annotation %s: unknown clinvar status %q", id, statusStr)
		}
		if freq < 0 || freq > 1 {
			return fmt.Errorf("annotation %s: population frequency %v out of range", id, freq)
		}
		t.ClinVar[id] = status
		t.Frequency[id] = freq
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("annotation rows: %w", err)
	}
	return nil
}

func loadGeneRows(db *sql.DB, t *Tables) error {
	rows, err := db.Query(`SELECT symbol, category, clinical FROM genes`)
	if err != nil {
		return fmt.Errorf("query genes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var symbol, category, clinical string
		if err := rows.Scan(&symbol, &category, &clinical); err != nil {
			return fmt.Errorf("scan gene row: %w", err)
		}
		switch category {
		case "cancer_risk":
			t.CancerRiskGenes = append(t.CancerRiskGenes, symbol)
		case "pharmacogenomic":
			t.PharmacogenomicGenes = append(t.PharmacogenomicGenes, symbol)
		case "":
		default:
			return fmt.Errorf("gene %s: unknown category %q", symbol, category)
		}
		if clinical != "" {
			t.GeneClinical[strings.ToUpper(symbol)] = clinical
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("gene rows: %w", err)
	}
	return nil
}
