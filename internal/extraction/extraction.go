// Package extraction pulls normalized text out of PDF resumes.
//
// Two strategies are tried in order: a row-based walk that keeps text grouped
// by visual line (better for multi-column and table layouts), then a plain
// page-by-page text walk. Output is lowercased because the rest of the
// pipeline matches case-insensitively against a lowercase taxonomy.
package extraction

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionError indicates both extraction strategies failed for a document.
// It aborts the whole profile build; nothing downstream can run without text.
type ExtractionError struct {
	Path      string
	LayoutErr error
	PlainErr  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s (layout: %v, plain: %v)",
		e.Path, e.LayoutErr, e.PlainErr)
}

// Extract reads the PDF at path and returns its lowercased text.
// Returns *ExtractionError when neither strategy yields non-whitespace text.
// The caller owns the file; nothing is written or cleaned up here.
func Extract(path string) (string, error) {
	text, layoutErr := extractByRows(path)
	if strings.TrimSpace(text) != "" {
		return strings.ToLower(text), nil
	}
	if layoutErr == nil {
		layoutErr = fmt.Errorf("no text content")
	}

	text, plainErr := extractPlain(path)
	if strings.TrimSpace(text) != "" {
		return strings.ToLower(text), nil
	}
	if plainErr == nil {
		plainErr = fmt.Errorf("no text content")
	}

	return "", &ExtractionError{Path: path, LayoutErr: layoutErr, PlainErr: plainErr}
}

// extractByRows walks each page's rows, joining text fragments within a row.
// Handles resumes with columns and tables better than the plain walk.
func extractByRows(path string) (text string, err error) {
	// The pdf reader panics on malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d rows: %w", i, err)
		}
		for _, row := range rows {
			for j, fragment := range row.Content {
				if j > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(fragment.S)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// extractPlain is the fallback: concatenated plain text per page.
func extractPlain(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d text: %w", i, err)
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
