// Package compliance implements the TRID fee-tolerance comparison
// between a Loan Estimate and a Closing Disclosure.
package compliance

import (
	"fmt"
	"math"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
	"github.com/confersolutions/mcp-mortgage-server/internal/tolerance"
)

const (
	// roundingAllowance absorbs upstream float/rounding noise on
	// zero-tolerance lines. It does not permit real increases.
	roundingAllowance = 0.01

	// aprThreshold is the regulatory APR accuracy limit in percentage
	// points. Fixed, not configurable.
	aprThreshold = 0.125

	// warnFraction of the 10% limit at which an advisory warning is
	// emitted. Operator convenience only, no regulatory basis.
	warnFraction = 0.8
)

// Compare checks a Closing Disclosure against its Loan Estimate and
// returns the compliance verdict. Pure function of its inputs: no I/O,
// deterministic, violations in fixed detection order (zero-tolerance
// lines, then the 10% line, then APR).
func Compare(le *models.LoanEstimate, cd *models.ClosingDisclosure) *models.ComplianceReport {
	violations := []models.Violation{}
	warnings := []string{}

	// Zero-tolerance lines: any increase beyond the rounding allowance
	// is a violation. Decreases never count toward the running diff.
	var zeroDiff float64
	for _, line := range tolerance.ZeroToleranceLines {
		leAmt := le.CostLine(line)
		cdAmt := cd.CostLine(line)
		delta := cdAmt - leAmt
		zeroDiff += math.Max(0, delta)
		if delta > roundingAllowance {
			violations = append(violations, models.Violation{
				Type:        models.ViolationZeroTolerance,
				Fee:         tolerance.Label(line),
				LEAmount:    leAmt,
				CDAmount:    cdAmt,
				AmountOver:  delta,
				Description: fmt.Sprintf("%s increased by $%.2f (zero tolerance - no increase allowed)", tolerance.Label(line), delta),
			})
		}
	}

	// 10% tolerance: the limit is always computed from the LE baseline.
	tenLE := le.CostLine(tolerance.TenPercentLine)
	tenCD := cd.CostLine(tolerance.TenPercentLine)
	tenLimit := tenLE * 0.10
	tenDiff := math.Max(0, tenCD-tenLE)

	if tenDiff > tenLimit {
		limit := tenLimit
		violations = append(violations, models.Violation{
			Type:        models.ViolationTenPercent,
			Fee:         tolerance.Label(tolerance.TenPercentLine),
			LEAmount:    tenLE,
			CDAmount:    tenCD,
			AmountOver:  tenDiff - tenLimit,
			Limit:       &limit,
			Description: fmt.Sprintf("10%% tolerance exceeded by $%.2f", tenDiff-tenLimit),
		})
	} else if tenDiff > warnFraction*tenLimit {
		warnings = append(warnings, fmt.Sprintf(
			"Services borrower can shop increased by $%.2f, approaching 10%% limit of $%.2f",
			tenDiff, tenLimit))
	}

	// APR accuracy: symmetric, a large decrease is also a violation.
	aprDiff := math.Abs(cd.APR - le.APR)
	if aprDiff > aprThreshold {
		violations = append(violations, models.Violation{
			Type:        models.ViolationAPRAccuracy,
			Fee:         "APR",
			LEAmount:    le.APR,
			CDAmount:    cd.APR,
			AmountOver:  aprDiff - aprThreshold,
			Description: fmt.Sprintf("APR changed by %.3f%% (max allowed: 0.125%%)", aprDiff),
		})
	}

	isCompliant := len(violations) == 0
	var summary string
	if isCompliant {
		summary = fmt.Sprintf(
			"COMPLIANT: Closing Disclosure is within TRID tolerance limits. "+
				"Zero-tolerance items: no increase. "+
				"10%% tolerance items: $%.2f increase (limit: $%.2f). "+
				"APR change: %.3f%% (limit: 0.125%%).",
			tenDiff, tenLimit, aprDiff)
	} else {
		summary = fmt.Sprintf(
			"NOT COMPLIANT: %d violation(s) found. Review required before closing.",
			len(violations))
	}

	return &models.ComplianceReport{
		IsCompliant:       isCompliant,
		Violations:        violations,
		Warnings:          warnings,
		ZeroToleranceDiff: zeroDiff,
		TenPercentDiff:    tenDiff,
		TenPercentLimit:   tenLimit,
		Summary:           summary,
	}
}
