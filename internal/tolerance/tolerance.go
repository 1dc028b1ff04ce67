// Package tolerance holds the fixed TRID fee-tolerance schedule. The
// schedule is the single source of truth for the comparator; it is not
// configurable and cannot be overridden by document metadata.
package tolerance

// Bucket is a TRID tolerance class for a closing-cost line.
type Bucket string

const (
	ZeroTolerance       Bucket = "zero_tolerance"
	TenPercentTolerance Bucket = "10_percent_tolerance"
	UnlimitedTolerance  Bucket = "unlimited_tolerance"
)

// ZeroToleranceLines are the lines that may not increase at all, in the
// fixed order violations are reported.
var ZeroToleranceLines = []string{
	"origination_charges",
	"services_cannot_shop",
}

// TenPercentLine is the single line whose aggregate increase is capped
// at 10% of its Loan Estimate value.
const TenPercentLine = "services_can_shop"

var schedule = map[string]Bucket{
	"origination_charges":  ZeroTolerance,
	"services_cannot_shop": ZeroTolerance,
	"services_can_shop":    TenPercentTolerance,
	"taxes_and_gov_fees":   UnlimitedTolerance,
	"prepaids":             UnlimitedTolerance,
	"initial_escrow":       UnlimitedTolerance,
	"other_costs":          UnlimitedTolerance,
}

var labels = map[string]string{
	"origination_charges":  "Origination Charges",
	"services_cannot_shop": "Services Borrower Cannot Shop",
	"services_can_shop":    "Services Borrower Can Shop",
	"taxes_and_gov_fees":   "Taxes and Government Fees",
	"prepaids":             "Prepaids",
	"initial_escrow":       "Initial Escrow",
	"other_costs":          "Other Costs",
}

// BucketFor returns the tolerance bucket for a cost line.
func BucketFor(line string) (Bucket, bool) {
	b, ok := schedule[line]
	return b, ok
}

// Canonical returns a fresh copy of the full line-to-bucket assignment,
// suitable for display metadata on a Loan Estimate.
func Canonical() map[string]string {
	out := make(map[string]string, len(schedule))
	for line, b := range schedule {
		out[line] = string(b)
	}
	return out
}

// Label returns the display name for a cost line as it appears on the
// disclosure forms, or the raw line name if unknown.
func Label(line string) string {
	if l, ok := labels[line]; ok {
		return l
	}
	return line
}
