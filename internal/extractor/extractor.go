// Package extractor turns raw PDF bytes into the flat field mappings
// consumed by the document models. Two modes exist: the default stub
// returns canned values, the text mode scans labeled amounts out of
// the PDF text layer.
package extractor

// Extractor yields untyped field mappings from validated PDF bytes.
// The mappings are materialized into typed documents by the models
// package; extraction itself promises nothing about field presence.
type Extractor interface {
	LoanEstimateFields(pdf []byte) (map[string]any, error)
	ClosingDisclosureFields(pdf []byte) (map[string]any, error)
}

// ForMode selects the extractor implementation. Unknown modes fall
// back to the stub, matching the default deployment.
func ForMode(mode string) Extractor {
	if mode == "text" {
		return &TextExtractor{}
	}
	return &StubExtractor{}
}
