package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/confersolutions/mcp-mortgage-server/internal/tolerance"
)

// CostLines enumerates the seven closing-cost lines shared by both
// disclosure documents, in the order they appear on the forms.
var CostLines = []string{
	"origination_charges",
	"services_cannot_shop",
	"services_can_shop",
	"taxes_and_gov_fees",
	"prepaids",
	"initial_escrow",
	"other_costs",
}

// LoanEstimate is the borrower's initial disclosure. Immutable after
// construction; build one only through LoanEstimateFromFields.
type LoanEstimate struct {
	LoanAmount     float64 `json:"loan_amount" validate:"gt=0,lt=100000000"`
	InterestRate   float64 `json:"interest_rate" validate:"gte=0,lte=100"`
	APR            float64 `json:"apr" validate:"gte=0,lte=100"`
	MonthlyPayment float64 `json:"monthly_payment" validate:"gt=0"`

	OriginationCharges float64 `json:"origination_charges" validate:"gte=0"`
	ServicesCannotShop float64 `json:"services_cannot_shop" validate:"gte=0"`
	ServicesCanShop    float64 `json:"services_can_shop" validate:"gte=0"`
	TaxesAndGovFees    float64 `json:"taxes_and_gov_fees" validate:"gte=0"`
	Prepaids           float64 `json:"prepaids" validate:"gte=0"`
	InitialEscrow      float64 `json:"initial_escrow" validate:"gte=0"`
	OtherCosts         float64 `json:"other_costs" validate:"gte=0"`

	LenderName      string `json:"lender_name,omitempty"`
	LoanTermMonths  int    `json:"loan_term_months,omitempty" validate:"omitempty,gte=1,lte=480"`
	PropertyAddress string `json:"property_address,omitempty"`
	BorrowerName    string `json:"borrower_name,omitempty"`

	// ToleranceBuckets is advisory display metadata from the upstream
	// extractor. The comparator never reads it; bucket assignment there
	// comes from the fixed regulatory schedule.
	ToleranceBuckets map[string]string `json:"tolerance_buckets"`
}

// ClosingDisclosure is the final disclosure for the same transaction.
type ClosingDisclosure struct {
	LoanAmount     float64 `json:"loan_amount" validate:"gt=0"`
	InterestRate   float64 `json:"interest_rate" validate:"gte=0,lte=100"`
	APR            float64 `json:"apr" validate:"gte=0,lte=100"`
	MonthlyPayment float64 `json:"monthly_payment" validate:"gt=0"`

	OriginationCharges float64 `json:"origination_charges" validate:"gte=0"`
	ServicesCannotShop float64 `json:"services_cannot_shop" validate:"gte=0"`
	ServicesCanShop    float64 `json:"services_can_shop" validate:"gte=0"`
	TaxesAndGovFees    float64 `json:"taxes_and_gov_fees" validate:"gte=0"`
	Prepaids           float64 `json:"prepaids" validate:"gte=0"`
	InitialEscrow      float64 `json:"initial_escrow" validate:"gte=0"`
	OtherCosts         float64 `json:"other_costs" validate:"gte=0"`

	CashToClose float64 `json:"cash_to_close"`
	ClosingDate string  `json:"closing_date,omitempty"`
}

var validate = newValidator()

// newValidator configures struct validation to report JSON field names,
// so a failed range check can name the offending document field.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toSchemaError converts the first validator failure into a coded
// schema violation naming the field.
func toSchemaError(err error) *CodedError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return NewSchemaError("", "validation failed: %v", err)
	}
	e := ve[0]
	switch e.Tag() {
	case "gt":
		return NewSchemaError(e.Field(), "must be greater than %s", e.Param())
	case "gte":
		return NewSchemaError(e.Field(), "must be greater than or equal to %s", e.Param())
	case "lt":
		return NewSchemaError(e.Field(), "must be less than %s", e.Param())
	case "lte":
		return NewSchemaError(e.Field(), "must be less than or equal to %s", e.Param())
	default:
		return NewSchemaError(e.Field(), "failed %s validation", e.Tag())
	}
}

// numberField reads a numeric field from an untyped extraction mapping.
func numberField(fields map[string]any, name string) (float64, bool, error) {
	v, ok := fields[name]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return n, true, nil
	case float32:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false, NewSchemaError(name, "must be a number, got %q", n.String())
		}
		return f, true, nil
	default:
		return 0, false, NewSchemaError(name, "must be a number, got %T", v)
	}
}

func requireNumber(fields map[string]any, name string) (float64, error) {
	v, ok, err := numberField(fields, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, NewSchemaError(name, "is required")
	}
	return v, nil
}

func stringField(fields map[string]any, name string) string {
	if s, ok := fields[name].(string); ok {
		return s
	}
	return ""
}

// LoanEstimateFromFields materializes a validated LoanEstimate from an
// untyped extraction mapping. Construction is all-or-nothing: any
// missing required field or out-of-range value rejects the whole
// document with a SCHEMA_VIOLATION.
func LoanEstimateFromFields(fields map[string]any) (*LoanEstimate, error) {
	le := &LoanEstimate{}

	required := []struct {
		name string
		dst  *float64
	}{
		{"loan_amount", &le.LoanAmount},
		{"interest_rate", &le.InterestRate},
		{"apr", &le.APR},
		{"monthly_payment", &le.MonthlyPayment},
	}
	for _, r := range required {
		v, err := requireNumber(fields, r.name)
		if err != nil {
			return nil, err
		}
		*r.dst = v
	}

	costs := []struct {
		name string
		dst  *float64
	}{
		{"origination_charges", &le.OriginationCharges},
		{"services_cannot_shop", &le.ServicesCannotShop},
		{"services_can_shop", &le.ServicesCanShop},
		{"taxes_and_gov_fees", &le.TaxesAndGovFees},
		{"prepaids", &le.Prepaids},
		{"initial_escrow", &le.InitialEscrow},
		{"other_costs", &le.OtherCosts},
	}
	for _, c := range costs {
		v, _, err := numberField(fields, c.name) // cost lines default to 0
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}

	le.LenderName = stringField(fields, "lender_name")
	le.PropertyAddress = stringField(fields, "property_address")
	le.BorrowerName = stringField(fields, "borrower_name")
	if v, ok, err := numberField(fields, "loan_term_months"); err != nil {
		return nil, err
	} else if ok {
		le.LoanTermMonths = int(v)
	}
	le.ToleranceBuckets = bucketField(fields)
	if le.ToleranceBuckets == nil {
		le.ToleranceBuckets = tolerance.Canonical()
	}

	if err := validate.Struct(le); err != nil {
		return nil, toSchemaError(err)
	}

	// Plausibility check on top of the range rules: sub-$1,000 loans are
	// rejected as extraction garbage rather than real loans.
	if le.LoanAmount < 1000 {
		return nil, NewSchemaError("loan_amount", "loan amount too small (< $1,000)")
	}

	return le, nil
}

// bucketField reads the advisory tolerance_buckets metadata, tolerating
// both string-valued and untyped maps from JSON decoding.
func bucketField(fields map[string]any) map[string]string {
	switch m := fields["tolerance_buckets"].(type) {
	case map[string]string:
		if len(m) > 0 {
			out := make(map[string]string, len(m))
			for k, v := range m {
				out[k] = v
			}
			return out
		}
	case map[string]any:
		if len(m) > 0 {
			out := make(map[string]string, len(m))
			for k, v := range m {
				if s, ok := v.(string); ok {
					out[k] = s
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// ClosingDisclosureFromFields materializes a validated ClosingDisclosure
// from an untyped extraction mapping. Same all-or-nothing contract as
// LoanEstimateFromFields.
func ClosingDisclosureFromFields(fields map[string]any) (*ClosingDisclosure, error) {
	cd := &ClosingDisclosure{}

	required := []struct {
		name string
		dst  *float64
	}{
		{"loan_amount", &cd.LoanAmount},
		{"interest_rate", &cd.InterestRate},
		{"apr", &cd.APR},
		{"monthly_payment", &cd.MonthlyPayment},
		{"cash_to_close", &cd.CashToClose},
	}
	for _, r := range required {
		v, err := requireNumber(fields, r.name)
		if err != nil {
			return nil, err
		}
		*r.dst = v
	}

	costs := []struct {
		name string
		dst  *float64
	}{
		{"origination_charges", &cd.OriginationCharges},
		{"services_cannot_shop", &cd.ServicesCannotShop},
		{"services_can_shop", &cd.ServicesCanShop},
		{"taxes_and_gov_fees", &cd.TaxesAndGovFees},
		{"prepaids", &cd.Prepaids},
		{"initial_escrow", &cd.InitialEscrow},
		{"other_costs", &cd.OtherCosts},
	}
	for _, c := range costs {
		v, _, err := numberField(fields, c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}

	cd.ClosingDate = stringField(fields, "closing_date")

	if err := validate.Struct(cd); err != nil {
		return nil, toSchemaError(err)
	}
	return cd, nil
}

// TotalClosingCosts is the sum of the seven cost lines. Recomputed on
// every read so it can never desync from the stored fields.
func (le *LoanEstimate) TotalClosingCosts() float64 {
	return le.OriginationCharges + le.ServicesCannotShop + le.ServicesCanShop +
		le.TaxesAndGovFees + le.Prepaids + le.InitialEscrow + le.OtherCosts
}

// CostLine returns the amount for a named cost line, or 0 for an
// unknown name.
func (le *LoanEstimate) CostLine(name string) float64 {
	switch name {
	case "origination_charges":
		return le.OriginationCharges
	case "services_cannot_shop":
		return le.ServicesCannotShop
	case "services_can_shop":
		return le.ServicesCanShop
	case "taxes_and_gov_fees":
		return le.TaxesAndGovFees
	case "prepaids":
		return le.Prepaids
	case "initial_escrow":
		return le.InitialEscrow
	case "other_costs":
		return le.OtherCosts
	}
	return 0
}

// CostLine is the ClosingDisclosure counterpart of LoanEstimate.CostLine.
func (cd *ClosingDisclosure) CostLine(name string) float64 {
	switch name {
	case "origination_charges":
		return cd.OriginationCharges
	case "services_cannot_shop":
		return cd.ServicesCannotShop
	case "services_can_shop":
		return cd.ServicesCanShop
	case "taxes_and_gov_fees":
		return cd.TaxesAndGovFees
	case "prepaids":
		return cd.Prepaids
	case "initial_escrow":
		return cd.InitialEscrow
	case "other_costs":
		return cd.OtherCosts
	}
	return 0
}

// MarshalJSON includes the derived total_closing_costs, computed at
// marshal time from the stored cost lines.
func (le *LoanEstimate) MarshalJSON() ([]byte, error) {
	type alias LoanEstimate
	return json.Marshal(struct {
		*alias
		TotalClosingCosts float64 `json:"total_closing_costs"`
	}{(*alias)(le), le.TotalClosingCosts()})
}
