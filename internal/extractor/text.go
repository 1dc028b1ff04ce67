package extractor

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/confersolutions/mcp-mortgage-server/internal/models"
)

// TextExtractor pulls labeled amounts out of the PDF text layer. It is
// best-effort: fields it cannot find are simply absent from the
// mapping, and the validating constructors reject the document if a
// required field is missing.
type TextExtractor struct{}

func (t *TextExtractor) LoanEstimateFields(pdfBytes []byte) (map[string]any, error) {
	text, err := extractText(pdfBytes)
	if err != nil {
		return nil, err
	}
	return scanFields(text), nil
}

func (t *TextExtractor) ClosingDisclosureFields(pdfBytes []byte) (map[string]any, error) {
	text, err := extractText(pdfBytes)
	if err != nil {
		return nil, err
	}
	return scanFields(text), nil
}

// extractText decodes the text layer of an in-memory PDF. It tries
// row-based extraction first (best layout preservation), then plain
// text, and rejects output that fails the readability check rather
// than hand garbage to the field scanner.
func extractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = models.NewFormatError("PDF text extraction failed: %v", r)
		}
	}()

	r, openErr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if openErr != nil {
		return "", models.NewFormatError("PDF could not be opened: %v", openErr)
	}
	numPages := r.NumPage()
	if numPages == 0 {
		return "", models.NewFormatError("PDF has no pages")
	}

	if text = extractByRow(r, numPages); isReadableText(text) {
		return text, nil
	}
	if text = extractPlainText(r); isReadableText(text) {
		return text, nil
	}

	return "", models.NewFormatError(
		"no readable text could be extracted from PDF; the file may be image-based or use custom font encodings")
}

// extractByRow reconstructs lines page by page via GetTextByRow.
func extractByRow(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractPlainText is the whole-document fallback path.
func extractPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// disclosureWords appear in virtually all TRID disclosure documents.
// Text containing none of them is likely mis-decoded.
var disclosureWords = []string{
	"loan", "estimate", "closing", "disclosure", "rate", "apr",
	"payment", "interest", "escrow", "borrower", "costs", "lender",
}

// isReadableText requires enough text, a high ratio of plain ASCII,
// and at least one recognizable disclosure word. Identity-encoded
// fonts produce accented garbage that passes looser checks.
func isReadableText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 50 {
		return false
	}
	total, readable := 0, 0
	for _, r := range trimmed {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(".,-/:;()'\"$%&@#!?+=*", r) {
			readable++
		}
	}
	if float64(readable)/float64(total) <= 0.6 {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, w := range disclosureWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
