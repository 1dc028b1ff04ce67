package models

// Violation types, matching the `type` field on the wire.
const (
	ViolationZeroTolerance = "zero_tolerance"
	ViolationTenPercent    = "10_percent_tolerance"
	ViolationAPRAccuracy   = "apr_accuracy"
)

// Violation is a single tolerance-rule breach found when comparing a
// Loan Estimate against a Closing Disclosure.
type Violation struct {
	Type        string   `json:"type"`
	Fee         string   `json:"fee"`
	LEAmount    float64  `json:"le_amount"`
	CDAmount    float64  `json:"cd_amount"`
	AmountOver  float64  `json:"amount_over"` // dollars, or percentage points for apr_accuracy
	Limit       *float64 `json:"limit,omitempty"`
	Description string   `json:"description"`
}

// ComplianceReport is the verdict of one LE/CD comparison. Violations
// are in detection order: zero-tolerance lines first, then the 10%
// line, then the APR check.
type ComplianceReport struct {
	IsCompliant       bool        `json:"is_compliant"`
	Violations        []Violation `json:"violations"`
	Warnings          []string    `json:"warnings"`
	ZeroToleranceDiff float64     `json:"zero_tolerance_diff"`
	TenPercentDiff    float64     `json:"ten_percent_diff"`
	TenPercentLimit   float64     `json:"ten_percent_limit"`
	Summary           string      `json:"summary"`
}
