package vcf

// VariantSource is the interface for anything that yields a finite stream of
// variants, such as a file parser or an in-memory fixture.
type VariantSource interface {
	// Next reads the next variant.
	// Returns nil, nil when there are no more variants.
	Next() (*Variant, error)
}
