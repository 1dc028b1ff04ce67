package extractor

// StubExtractor returns canned field values regardless of input. It
// stands in for a real field extractor so the rest of the pipeline can
// be exercised end to end before structured extraction lands.
type StubExtractor struct{}

func (s *StubExtractor) LoanEstimateFields(pdf []byte) (map[string]any, error) {
	return map[string]any{
		"loan_amount":          300000.0,
		"interest_rate":        6.5,
		"apr":                  6.73,
		"monthly_payment":      1896.20,
		"origination_charges":  1500.0,
		"services_cannot_shop": 800.0,
		"services_can_shop":    1200.0,
		"taxes_and_gov_fees":   2500.0,
		"prepaids":             3000.0,
		"initial_escrow":       2400.0,
		"other_costs":          600.0,
		"lender_name":          "Example Bank",
		"loan_term_months":     360,
	}, nil
}

func (s *StubExtractor) ClosingDisclosureFields(pdf []byte) (map[string]any, error) {
	return map[string]any{
		"loan_amount":          300000.0,
		"interest_rate":        6.5,
		"apr":                  6.75,
		"monthly_payment":      1896.20,
		"origination_charges":  1500.0,
		"services_cannot_shop": 850.0,
		"services_can_shop":    1250.0,
		"taxes_and_gov_fees":   2500.0,
		"prepaids":             3000.0,
		"initial_escrow":       2400.0,
		"other_costs":          600.0,
		"cash_to_close":        15000.0,
		"closing_date":         "2025-06-15",
	}, nil
}
