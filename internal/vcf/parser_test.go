package vcf

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParser_SampleFile(t *testing.T) {
	testFile := findTestFile(t, "sample_variants.vcf")

	parser, err := NewParser(testFile)
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	var variants []*Variant
	for {
		v, err := parser.Next()
		if err != nil {
			t.Fatalf("Error reading variant: %v", err)
		}
		if v == nil {
			break
		}
		variants = append(variants, v)
	}

	if len(variants) != 10 {
		t.Fatalf("Expected 10 variants, got %d", len(variants))
	}
	if len(parser.Diagnostics()) != 0 {
		t.Errorf("Expected no diagnostics, got %v", parser.Diagnostics())
	}

	// First variant: BRCA1
	v := variants[0]
	if v.Chrom != "17" {
		t.Errorf("Expected chrom 17, got %s", v.Chrom)
	}
	if v.Pos != 43044295 {
		t.Errorf("Expected pos 43044295, got %d", v.Pos)
	}
	if v.ID != "rs80357906" {
		t.Errorf("Expected ID rs80357906, got %s", v.ID)
	}
	if !v.HasQual || v.Qual != 1250.0 {
		t.Errorf("Expected qual 1250.0, got %v (has=%v)", v.Qual, v.HasQual)
	}
	if v.Gene() != "BRCA1" {
		t.Errorf("Expected gene BRCA1, got %s", v.Gene())
	}
	if v.Impact() != ImpactHigh {
		t.Errorf("Expected impact HIGH, got %s", v.Impact())
	}

	// QUAL "." is absent, not zero
	if variants[5].HasQual {
		t.Error("Expected absent quality for rs2691305")
	}

	// ID "." is absent; filter names other than PASS are preserved
	if variants[7].ID != "" {
		t.Errorf("Expected empty ID, got %s", variants[7].ID)
	}
	if variants[7].Filter != "q10" {
		t.Errorf("Expected filter q10, got %s", variants[7].Filter)
	}
}

func TestParser_MalformedLines(t *testing.T) {
	testFile := findTestFile(t, "malformed.vcf")

	parser, err := NewParser(testFile)
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	count := 0
	for {
		v, err := parser.Next()
		if err != nil {
			t.Fatalf("Error reading variant: %v", err)
		}
		if v == nil {
			break
		}
		count++
	}

	// 2 valid lines, 3 malformed (bad position, too few columns, bad quality)
	if count != 2 {
		t.Errorf("Expected 2 variants, got %d", count)
	}

	diags := parser.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("Expected 3 diagnostics, got %d: %v", len(diags), diags)
	}

	wantLines := []int{4, 5, 6}
	for i, d := range diags {
		if d.Line != wantLines[i] {
			t.Errorf("Diagnostic %d: expected line %d, got %d", i, wantLines[i], d.Line)
		}
		if d.Reason == "" {
			t.Errorf("Diagnostic %d: empty reason", i)
		}
	}
}

func TestParser_MissingHeader(t *testing.T) {
	testFile := findTestFile(t, "no_header.vcf")

	_, err := NewParser(testFile)
	if err == nil {
		t.Fatal("Expected error for missing #CHROM header")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T: %v", err, err)
	}
}

func TestParser_BadColumns(t *testing.T) {
	testFile := findTestFile(t, "bad_columns.vcf")

	_, err := NewParser(testFile)
	if err == nil {
		t.Fatal("Expected error for incomplete column header")
	}
	if !strings.Contains(err.Error(), "columns") {
		t.Errorf("Expected column error, got: %v", err)
	}
}

func TestParser_EmptyInput(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader(""))
	if err == nil {
		t.Fatal("Expected error for empty input")
	}
}

func TestParser_HeaderOnly(t *testing.T) {
	input := "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"

	parser, err := NewParserFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	v, err := parser.Next()
	if err != nil {
		t.Fatalf("Error on empty data: %v", err)
	}
	if v != nil {
		t.Errorf("Expected no variants, got %+v", v)
	}
	if len(parser.Diagnostics()) != 0 {
		t.Errorf("Expected no diagnostics, got %v", parser.Diagnostics())
	}
}

func TestParser_Gzip(t *testing.T) {
	src := findTestFile(t, "sample_variants.vcf")
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	gzPath := filepath.Join(t.TempDir(), "sample.vcf.gz")
	f, err := os.Create(gzPath)
	if err != nil {
		t.Fatalf("Failed to create gzip file: %v", err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("Failed to write gzip data: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer: %v", err)
	}
	f.Close()

	parser, err := NewParser(gzPath)
	if err != nil {
		t.Fatalf("Failed to create parser for gzip file: %v", err)
	}
	defer parser.Close()

	count := 0
	for {
		v, err := parser.Next()
		if err != nil {
			t.Fatalf("Error reading variant: %v", err)
		}
		if v == nil {
			break
		}
		count++
	}

	if count != 10 {
		t.Errorf("Expected 10 variants from gzip file, got %d", count)
	}
}

func TestParseInfo(t *testing.T) {
	tests := []struct {
		name  string
		info  string
		key   string
		want  interface{}
		count int
	}{
		{"key value", "GENE=TP53", "GENE", "TP53", 1},
		{"flag", "SOMATIC", "SOMATIC", true, 1},
		{"mixed", "GENE=TP53;SOMATIC;DP=42", "DP", "42", 3},
		{"duplicate last wins", "GENE=TP53;GENE=KRAS", "GENE", "KRAS", 1},
		{"empty entries skipped", "GENE=TP53;;=broken", "GENE", "TP53", 1},
		{"dot is empty", ".", "", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := parseInfo(tt.info)
			if len(info) != tt.count {
				t.Errorf("Expected %d entries, got %d: %v", tt.count, len(info), info)
			}
			if tt.key != "" && info[tt.key] != tt.want {
				t.Errorf("info[%q] = %v, want %v", tt.key, info[tt.key], tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Line:    42,
		Message: "expected #CHROM header line before data lines",
	}

	expected := "vcf parse error at line 42: expected #CHROM header line before data lines"
	if err.Error() != expected {
		t.Errorf("Error message mismatch: got %q, want %q", err.Error(), expected)
	}
}

// findTestFile locates a test file in the testdata directory.
func findTestFile(t *testing.T, name string) string {
	t.Helper()

	paths := []string{
		filepath.Join("testdata", name),
		filepath.Join("..", "..", "testdata", name),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	t.Fatalf("Test file not found: %s", name)
	return ""
}
