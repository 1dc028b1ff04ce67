package prompts

import (
	"errors"
	"strings"
	"testing"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

func TestList(t *testing.T) {
	list := List()
	if len(list) != 2 {
		t.Fatalf("got %d prompts, want 2", len(list))
	}
	if list[0].Name != "analyze_loan_estimate" {
		t.Errorf("first prompt: got %q", list[0].Name)
	}
	if len(list[0].Arguments) != 1 || list[0].Arguments[0].Name != "analysis_type" {
		t.Errorf("analyze_loan_estimate arguments: got %+v", list[0].Arguments)
	}
	if list[0].Arguments[0].Required {
		t.Error("analysis_type must be optional")
	}
}

func TestGetAnalysisTypes(t *testing.T) {
	tests := []struct {
		analysisType string
		wantSnippet  string
	}{
		{"quick", "brief summary"},
		{"comprehensive", "Tolerance Bucket Analysis"},
		{"compliance", "TRID Compliance Review Checklist"},
		{"", "Tolerance Bucket Analysis"}, // defaults to comprehensive
	}

	for _, tt := range tests {
		name := tt.analysisType
		if name == "" {
			name = "default"
		}
		t.Run(name, func(t *testing.T) {
			msgs, err := Get("analyze_loan_estimate", map[string]string{"analysis_type": tt.analysisType})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(msgs) != 1 || msgs[0].Role != "user" {
				t.Fatalf("unexpected messages: %+v", msgs)
			}
			if !strings.Contains(msgs[0].Content, tt.wantSnippet) {
				t.Errorf("content missing %q", tt.wantSnippet)
			}
		})
	}
}

func TestGetCompareLoanOptions(t *testing.T) {
	msgs, err := Get("compare_loan_options", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msgs[0].Content, "Break-even Analysis") {
		t.Error("compare_loan_options content missing expected section")
	}
}

func TestGetUnknownPrompt(t *testing.T) {
	_, err := Get("write_poetry", nil)
	var ce *models.CodedError
	if !errors.As(err, &ce) || ce.Kind != models.UnknownOperation {
		t.Errorf("expected unknown-operation error, got %v", err)
	}
}
