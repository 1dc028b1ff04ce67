package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Label patterns for the disclosure form lines, tried in order. The
// can/cannot shop patterns rely on "can shop" never being a substring
// of "cannot shop".
var fieldPatterns = []struct {
	name  string
	label *regexp.Regexp
}{
	{"loan_amount", regexp.MustCompile(`(?i)\bloan amount\b`)},
	{"interest_rate", regexp.MustCompile(`(?i)\binterest rate\b`)},
	{"apr", regexp.MustCompile(`(?i)\b(?:APR|annual percentage rate)\b`)},
	{"monthly_payment", regexp.MustCompile(`(?i)(?:monthly (?:principal\s*&\s*interest|payment)|principal\s*&\s*interest)`)},
	{"origination_charges", regexp.MustCompile(`(?i)\borigination charges\b`)},
	{"services_cannot_shop", regexp.MustCompile(`(?i)services (?:you |borrower )?cannot shop`)},
	{"services_can_shop", regexp.MustCompile(`(?i)services (?:you |borrower )?can shop`)},
	{"taxes_and_gov_fees", regexp.MustCompile(`(?i)taxes and (?:other )?government fees`)},
	{"prepaids", regexp.MustCompile(`(?i)\bprepaids\b`)},
	{"initial_escrow", regexp.MustCompile(`(?i)\binitial escrow\b`)},
	{"other_costs", regexp.MustCompile(`(?i)^\s*other(?:\s+costs)?\b`)},
	{"cash_to_close", regexp.MustCompile(`(?i)\bcash to close\b`)},
	{"closing_date", regexp.MustCompile(`(?i)\bclosing date\b`)},
	{"lender_name", regexp.MustCompile(`(?i)^\s*lender\b`)},
}

var (
	amountPattern = regexp.MustCompile(`-?\$?\s?\d[\d,]*(?:\.\d+)?`)
	datePattern   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}`)
)

// scanFields walks the extracted text line by line and claims the
// first amount following each recognized label. Fields it cannot find
// stay absent; the validating constructors decide what is fatal.
func scanFields(text string) map[string]any {
	fields := map[string]any{}

	for _, line := range strings.Split(text, "\n") {
		for _, fp := range fieldPatterns {
			if _, seen := fields[fp.name]; seen {
				continue
			}
			loc := fp.label.FindStringIndex(line)
			if loc == nil {
				continue
			}
			rest := line[loc[1]:]

			switch fp.name {
			case "closing_date":
				if d := datePattern.FindString(rest); d != "" {
					fields[fp.name] = d
				}
			case "lender_name":
				if name := strings.TrimSpace(strings.TrimLeft(rest, " :")); name != "" {
					fields[fp.name] = name
				}
			default:
				if m := amountPattern.FindString(rest); m != "" {
					if v, err := parseAmount(m); err == nil {
						fields[fp.name] = v
					}
				}
			}
			break
		}
	}
	return fields
}

// parseAmount converts strings like "$1,234.56" or "6.73%" to float64.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
