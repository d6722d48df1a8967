package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// requiredColumns is the minimal column set the #CHROM header line must carry,
// in order.
var requiredColumns = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

// Diagnostic records a data line that was rejected and skipped.
type Diagnostic struct {
	Line   int    // 1-based line number in the input
	Reason string // why the line was rejected
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
}

// Parser reads variants from a VCF file. Data lines that fail structural
// validation are skipped and recorded as diagnostics; only a missing or
// invalid header fails the parse as a whole.
type Parser struct {
	reader      *bufio.Reader
	file        *os.File
	gzipReader  *gzip.Reader
	lineNumber  int
	header      []string
	diagnostics []Diagnostic
}

// NewParser creates a new VCF parser for the given file.
// Supports both plain VCF and gzipped VCF (.vcf.gz) files. Use "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vcf file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read vcf header: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek vcf file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin or an
// uploaded file).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{
		reader: bufio.NewReader(r),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}

	return p, nil
}

// parseHeader reads meta lines up to and including the #CHROM column-header
// line and validates the required column set.
func (p *Parser) parseHeader() error {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read header: %w", err)
		}
		if len(line) > 0 {
			p.lineNumber++
		}

		trimmed := strings.TrimRight(line, "\r\n")

		switch {
		case trimmed == "" && err == io.EOF:
			return &ParseError{
				Line:    p.lineNumber,
				Message: "no #CHROM header line found",
			}
		case trimmed == "":
			// blank line between meta lines
		case strings.HasPrefix(trimmed, "##"):
			p.header = append(p.header, trimmed)
		case strings.HasPrefix(trimmed, "#CHROM"):
			p.header = append(p.header, trimmed)
			return validateColumns(trimmed, p.lineNumber)
		default:
			return &ParseError{
				Line:    p.lineNumber,
				Message: "expected #CHROM header line before data lines",
			}
		}

		if err == io.EOF {
			return &ParseError{
				Line:    p.lineNumber,
				Message: "no #CHROM header line found",
			}
		}
	}
}

// validateColumns checks that the #CHROM line carries the 8 required columns.
func validateColumns(line string, lineNumber int) error {
	cols := strings.Split(line, "\t")
	if len(cols) < len(requiredColumns) {
		return &ParseError{
			Line:    lineNumber,
			Message: fmt.Sprintf("header has %d columns, expected at least %d", len(cols), len(requiredColumns)),
		}
	}
	for i, want := range requiredColumns {
		if cols[i] != want {
			return &ParseError{
				Line:    lineNumber,
				Message: fmt.Sprintf("header column %d is %q, expected %q", i+1, cols[i], want),
			}
		}
	}
	return nil
}

// Next reads the next valid variant from the VCF file. Malformed data lines
// are recorded as diagnostics and skipped. Returns nil, nil at end of input.
func (p *Parser) Next() (*Variant, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read variant line: %w", err)
		}
		if len(line) > 0 {
			p.lineNumber++
		}

		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			v, reason := parseLine(trimmed)
			if v == nil {
				p.diagnostics = append(p.diagnostics, Diagnostic{Line: p.lineNumber, Reason: reason})
			} else {
				return v, nil
			}
		}

		if err == io.EOF {
			return nil, nil
		}
	}
}

// parseLine parses a single VCF data line. On failure it returns a nil
// variant and the rejection reason.
func parseLine(line string) (*Variant, string) {
	fields := strings.Split(line, "\t")
	if len(fields) < 8 {
		return nil, fmt.Sprintf("expected at least 8 columns, found %d", len(fields))
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Sprintf("invalid position %q", fields[1])
	}
	if pos < 0 {
		return nil, fmt.Sprintf("negative position %d", pos)
	}

	var qual float64
	hasQual := false
	if fields[5] != "." {
		qual, err = strconv.ParseFloat(fields[5], 64)
		if err != nil {
			return nil, fmt.Sprintf("invalid quality %q", fields[5])
		}
		hasQual = true
	}

	id := fields[2]
	if id == "." {
		id = ""
	}

	filter := fields[6]
	if filter == "." {
		filter = "PASS"
	}

	return &Variant{
		Chrom:   fields[0],
		Pos:     pos,
		ID:      id,
		Ref:     fields[3],
		Alt:     fields[4],
		Qual:    qual,
		HasQual: hasQual,
		Filter:  filter,
		Info:    parseInfo(fields[7]),
	}, ""
}

// parseInfo parses the INFO field into a map. Entries are key=value pairs or
// bare flags (mapped to true); for duplicate keys the last occurrence wins.
func parseInfo(info string) map[string]interface{} {
	result := make(map[string]interface{})
	if info == "." {
		return result
	}

	for _, kv := range strings.Split(info, ";") {
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if parts[0] == "" {
			continue
		}
		if len(parts) == 2 {
			result[parts[0]] = parts[1]
		} else {
			result[parts[0]] = true
		}
	}

	return result
}

// Header returns the VCF header lines, including the #CHROM line.
func (p *Parser) Header() []string {
	return p.header
}

// Diagnostics returns the rejected-line diagnostics accumulated so far.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents a file-structure error that fails the whole parse.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %s", e.Line, e.Message)
}
