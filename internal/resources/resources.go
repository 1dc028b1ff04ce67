// Package resources serves the reference documents exposed alongside
// the tools: MISMO schema summaries and the mortgage glossary.
package resources

import (
	"encoding/json"
	"sort"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
	"github.com/confersolutions/mcp-mortgage-server/internal/tolerance"
)

// Resource describes one readable reference document.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description"`
}

// List returns the available resources in a fixed order. Names double
// as the read keys.
func List() []Resource {
	return []Resource{
		{
			URI:         "mortgage://schemas/mismo-le",
			Name:        "mismo-le",
			MimeType:    "application/json",
			Description: "MISMO 3.4 Loan Estimate schema reference",
		},
		{
			URI:         "mortgage://schemas/mismo-cd",
			Name:        "mismo-cd",
			MimeType:    "application/json",
			Description: "MISMO 3.4 Closing Disclosure schema reference",
		},
		{
			URI:         "mortgage://glossary/terms",
			Name:        "glossary",
			MimeType:    "application/json",
			Description: "Mortgage terminology definitions",
		},
	}
}

// Read returns the JSON content of a named resource.
func Read(name string) (string, error) {
	switch name {
	case "mismo-le":
		return marshal(map[string]any{
			"schema":  "MISMO 3.4 Loan Estimate",
			"version": "3.4",
			"fields": map[string]any{
				"loan_amount":     map[string]any{"type": "decimal", "required": true},
				"interest_rate":   map[string]any{"type": "percentage", "required": true},
				"apr":             map[string]any{"type": "percentage", "required": true},
				"monthly_payment": map[string]any{"type": "decimal", "required": true},
			},
			"tolerance_rules": toleranceRules(),
		})
	case "mismo-cd":
		return marshal(map[string]any{
			"schema":  "MISMO 3.4 Closing Disclosure",
			"version": "3.4",
			"note":    "Similar to LE schema with additional final amounts",
		})
	case "glossary":
		return marshal(glossary)
	default:
		return "", models.NewUnknownOperationError(name)
	}
}

// toleranceRules inverts the fixed schedule into bucket -> lines, so
// the published reference can never drift from what the comparator
// enforces.
func toleranceRules() map[string][]string {
	rules := make(map[string][]string)
	for line, bucket := range tolerance.Canonical() {
		rules[bucket] = append(rules[bucket], line)
	}
	for _, lines := range rules {
		sort.Strings(lines)
	}
	return rules
}

var glossary = map[string]string{
	"APR":         "Annual Percentage Rate - The cost of credit as a yearly rate, including interest and certain fees.",
	"TRID":        "TILA-RESPA Integrated Disclosure - Federal regulation requiring specific mortgage disclosures.",
	"LE":          "Loan Estimate - Initial disclosure provided within 3 days of application.",
	"CD":          "Closing Disclosure - Final disclosure provided at least 3 days before closing.",
	"MISMO":       "Mortgage Industry Standards Maintenance Organization - Sets data standards.",
	"escrow":      "Funds held by third party for taxes and insurance.",
	"origination": "Process of creating a new loan; includes lender fees.",
	"tolerance":   "Limits on how much fees can increase from LE to CD.",
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
