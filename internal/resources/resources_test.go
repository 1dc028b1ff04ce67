package resources

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

func TestListIsStable(t *testing.T) {
	resources := List()
	if len(resources) != 3 {
		t.Fatalf("got %d resources, want 3", len(resources))
	}
	wantNames := []string{"mismo-le", "mismo-cd", "glossary"}
	for i, name := range wantNames {
		if resources[i].Name != name {
			t.Errorf("resource %d: got %q, want %q", i, resources[i].Name, name)
		}
	}
}

func TestReadLESchemaCarriesToleranceRules(t *testing.T) {
	content, err := Read("mismo-le")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		ToleranceRules map[string][]string `json:"tolerance_rules"`
	}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	zero := doc.ToleranceRules["zero_tolerance"]
	if len(zero) != 2 || zero[0] != "origination_charges" || zero[1] != "services_cannot_shop" {
		t.Errorf("zero_tolerance rules: got %v", zero)
	}
	if got := doc.ToleranceRules["10_percent_tolerance"]; len(got) != 1 || got[0] != "services_can_shop" {
		t.Errorf("10_percent_tolerance rules: got %v", got)
	}
	if got := doc.ToleranceRules["unlimited_tolerance"]; len(got) != 4 {
		t.Errorf("unlimited_tolerance rules: got %v", got)
	}
}

func TestReadGlossary(t *testing.T) {
	content, err := Read("glossary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var terms map[string]string
	if err := json.Unmarshal([]byte(content), &terms); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, term := range []string{"APR", "TRID", "LE", "CD"} {
		if terms[term] == "" {
			t.Errorf("glossary missing %q", term)
		}
	}
}

func TestReadUnknown(t *testing.T) {
	_, err := Read("nonexistent")
	var ce *models.CodedError
	if !errors.As(err, &ce) || ce.Kind != models.UnknownOperation {
		t.Errorf("expected unknown-operation error, got %v", err)
	}
}
