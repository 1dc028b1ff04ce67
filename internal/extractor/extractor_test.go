package extractor

import (
	"math"
	"strings"
	"testing"
)

func TestForMode(t *testing.T) {
	if _, ok := ForMode("text").(*TextExtractor); !ok {
		t.Error(`ForMode("text") should return a TextExtractor`)
	}
	if _, ok := ForMode("stub").(*StubExtractor); !ok {
		t.Error(`ForMode("stub") should return a StubExtractor`)
	}
	if _, ok := ForMode("bogus").(*StubExtractor); !ok {
		t.Error("unknown modes should fall back to the stub")
	}
}

func TestStubLoanEstimateFields(t *testing.T) {
	s := &StubExtractor{}
	fields, err := s.LoanEstimateFields(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["loan_amount"] != 300000.0 {
		t.Errorf("loan_amount: got %v", fields["loan_amount"])
	}
	if fields["apr"] != 6.73 {
		t.Errorf("apr: got %v", fields["apr"])
	}
	if fields["services_cannot_shop"] != 800.0 {
		t.Errorf("services_cannot_shop: got %v", fields["services_cannot_shop"])
	}
}

func TestStubClosingDisclosureFields(t *testing.T) {
	s := &StubExtractor{}
	fields, err := s.ClosingDisclosureFields(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields["apr"] != 6.75 {
		t.Errorf("apr: got %v", fields["apr"])
	}
	if fields["cash_to_close"] != 15000.0 {
		t.Errorf("cash_to_close: got %v", fields["cash_to_close"])
	}
	if fields["closing_date"] != "2025-06-15" {
		t.Errorf("closing_date: got %v", fields["closing_date"])
	}
}

func TestScanFields(t *testing.T) {
	text := strings.Join([]string{
		"Closing Disclosure",
		"Lender: First Example Mortgage",
		"Loan Amount $300,000",
		"Interest Rate 6.5%",
		"APR 6.75%",
		"Monthly Principal & Interest $1,896.20",
		"A. Origination Charges $1,500.00",
		"B. Services Borrower Cannot Shop For $850.00",
		"C. Services Borrower Can Shop For $1,250.00",
		"E. Taxes and Other Government Fees $2,500.00",
		"F. Prepaids $3,000.00",
		"G. Initial Escrow Payment at Closing $2,400.00",
		"Other Costs $600.00",
		"Cash to Close $15,000.00",
		"Closing Date 2025-06-15",
	}, "\n")

	fields := scanFields(text)

	wantNums := map[string]float64{
		"loan_amount":          300000,
		"interest_rate":        6.5,
		"apr":                  6.75,
		"monthly_payment":      1896.20,
		"origination_charges":  1500,
		"services_cannot_shop": 850,
		"services_can_shop":    1250,
		"taxes_and_gov_fees":   2500,
		"prepaids":             3000,
		"initial_escrow":       2400,
		"other_costs":          600,
		"cash_to_close":        15000,
	}
	for name, want := range wantNums {
		got, ok := fields[name].(float64)
		if !ok {
			t.Errorf("%s: missing or not a number (%v)", name, fields[name])
			continue
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
	if fields["closing_date"] != "2025-06-15" {
		t.Errorf("closing_date: got %v", fields["closing_date"])
	}
	if fields["lender_name"] != "First Example Mortgage" {
		t.Errorf("lender_name: got %v", fields["lender_name"])
	}
}

func TestScanFieldsDistinguishesShopLines(t *testing.T) {
	// "cannot shop" must never be claimed by the can-shop pattern.
	fields := scanFields("Services You Cannot Shop For $800\nServices You Can Shop For $1,200")

	if got := fields["services_cannot_shop"]; got != 800.0 {
		t.Errorf("services_cannot_shop: got %v", got)
	}
	if got := fields["services_can_shop"]; got != 1200.0 {
		t.Errorf("services_can_shop: got %v", got)
	}
}

func TestScanFieldsMissingValuesStayAbsent(t *testing.T) {
	fields := scanFields("Loan Amount $250,000\nsome unrelated line")

	if fields["loan_amount"] != 250000.0 {
		t.Errorf("loan_amount: got %v", fields["loan_amount"])
	}
	if _, ok := fields["apr"]; ok {
		t.Error("apr should be absent when not in the text")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"25.99", 25.99, false},
		{"1,234.56", 1234.56, false},
		{"$25.99", 25.99, false},
		{"-25.99", -25.99, false},
		{"$1,234,567.89", 1234567.89, false},
		{"6.73%", 6.73, false},
		{"", 0, false},
		{" 25.99 ", 25.99, false},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestIsReadableText(t *testing.T) {
	readable := "Loan Estimate. Loan Amount $300,000. Interest Rate 6.5%. Monthly payment and escrow details follow."
	if !isReadableText(readable) {
		t.Error("plain disclosure text should be readable")
	}
	if isReadableText("short") {
		t.Error("short text should not be readable")
	}
	garbage := strings.Repeat("Ã¸â¦Â£", 40)
	if isReadableText(garbage) {
		t.Error("non-ASCII garbage should not be readable")
	}
	noWords := strings.Repeat("zzqx vtw 123 ", 20)
	if isReadableText(noWords) {
		t.Error("text without disclosure vocabulary should not be readable")
	}
}
