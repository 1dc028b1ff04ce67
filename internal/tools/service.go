package tools

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/confersolutions/mcp-mortgage-server/internal/compliance"
	"github.com/confersolutions/mcp-mortgage-server/internal/extractor"
	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

// PDFFetcher is the ingestion gateway as the tools see it.
type PDFFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Service implements the four mortgage operations on top of the
// ingestion gateway and the field extractor.
type Service struct {
	fetcher   PDFFetcher
	extractor extractor.Extractor
}

func NewService(f PDFFetcher, ex extractor.Extractor) *Service {
	return &Service{fetcher: f, extractor: ex}
}

// DefaultRegistry builds a registry with all four operations registered.
func DefaultRegistry(f PDFFetcher, ex extractor.Extractor) *Registry {
	return NewRegistry().withService(NewService(f, ex))
}

func stringArg(input map[string]any, name string) string {
	s, _ := input[name].(string)
	return s
}

func (s *Service) hello(ctx context.Context, input map[string]any) (any, error) {
	name := stringArg(input, "name")
	if name == "" {
		name = "World"
	}
	return fmt.Sprintf("Hello, %s! Mortgage compliance server is working correctly.", name), nil
}

// parseLoanEstimate fetches, extracts, and validates a Loan Estimate.
func (s *Service) parseLoanEstimate(ctx context.Context, input map[string]any) (any, error) {
	pdfURL := stringArg(input, "pdf_url")
	if pdfURL == "" {
		return nil, models.NewSchemaError("pdf_url", "is required")
	}
	pdfBytes, err := s.fetcher.Fetch(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	fields, err := s.extractor.LoanEstimateFields(pdfBytes)
	if err != nil {
		return nil, err
	}
	return models.LoanEstimateFromFields(fields)
}

func (s *Service) parseClosingDisclosure(ctx context.Context, input map[string]any) (any, error) {
	pdfURL := stringArg(input, "pdf_url")
	if pdfURL == "" {
		return nil, models.NewSchemaError("pdf_url", "is required")
	}
	pdfBytes, err := s.fetcher.Fetch(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	fields, err := s.extractor.ClosingDisclosureFields(pdfBytes)
	if err != nil {
		return nil, err
	}
	return models.ClosingDisclosureFromFields(fields)
}

// compareLECD fetches both documents concurrently; the first failure
// cancels the sibling fetch instead of waiting for it.
func (s *Service) compareLECD(ctx context.Context, input map[string]any) (any, error) {
	leURL := stringArg(input, "loan_estimate_url")
	if leURL == "" {
		return nil, models.NewSchemaError("loan_estimate_url", "is required")
	}
	cdURL := stringArg(input, "closing_disclosure_url")
	if cdURL == "" {
		return nil, models.NewSchemaError("closing_disclosure_url", "is required")
	}

	var (
		le *models.LoanEstimate
		cd *models.ClosingDisclosure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pdfBytes, err := s.fetcher.Fetch(gctx, leURL)
		if err != nil {
			return err
		}
		fields, err := s.extractor.LoanEstimateFields(pdfBytes)
		if err != nil {
			return err
		}
		le, err = models.LoanEstimateFromFields(fields)
		return err
	})
	g.Go(func() error {
		pdfBytes, err := s.fetcher.Fetch(gctx, cdURL)
		if err != nil {
			return err
		}
		fields, err := s.extractor.ClosingDisclosureFields(pdfBytes)
		if err != nil {
			return err
		}
		cd, err = models.ClosingDisclosureFromFields(fields)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compliance.Compare(le, cd), nil
}

func urlProperty(desc string) Property {
	return Property{Type: "string", Description: desc}
}

// withService registers the four operations in their fixed order.
func (r *Registry) withService(s *Service) *Registry {
	r.Register(Tool{
		Definition: Definition{
			Name:        "hello",
			Description: "Simple greeting tool for testing connectivity.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"name": {Type: "string", Description: "Name to greet (default: World)"},
				},
				Required: []string{},
			},
		},
		Handler: s.hello,
	})
	r.Register(Tool{
		Definition: Definition{
			Name: "parse_loan_estimate",
			Description: "Parse a Loan Estimate PDF into MISMO-compliant structured data. " +
				"Downloads an external PDF document from an approved domain, subject to size and timeout limits.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"pdf_url": urlProperty("HTTPS URL to Loan Estimate PDF"),
				},
				Required: []string{"pdf_url"},
			},
			RequiresApproval: true,
		},
		Handler: s.parseLoanEstimate,
	})
	r.Register(Tool{
		Definition: Definition{
			Name: "parse_closing_disclosure",
			Description: "Parse a Closing Disclosure PDF into MISMO-compliant structured data. " +
				"Downloads an external PDF document from an approved domain.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"pdf_url": urlProperty("HTTPS URL to Closing Disclosure PDF"),
				},
				Required: []string{"pdf_url"},
			},
			RequiresApproval: true,
		},
		Handler: s.parseClosingDisclosure,
	})
	r.Register(Tool{
		Definition: Definition{
			Name: "compare_le_cd",
			Description: "Compare Loan Estimate vs Closing Disclosure for TRID compliance. " +
				"Downloads and compares two PDF documents; checks zero-tolerance, 10% tolerance, and APR accuracy.",
			InputSchema: Schema{
				Type: "object",
				Properties: map[string]Property{
					"loan_estimate_url":      urlProperty("HTTPS URL to Loan Estimate PDF"),
					"closing_disclosure_url": urlProperty("HTTPS URL to Closing Disclosure PDF"),
				},
				Required: []string{"loan_estimate_url", "closing_disclosure_url"},
			},
			RequiresApproval: true,
		},
		Handler: s.compareLECD,
	})
	return r
}
