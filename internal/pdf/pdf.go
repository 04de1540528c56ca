// Package pdf renders markdown worksheets as PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

const DefaultPageSize = "Letter"

// PageSizes are the paper sizes a worksheet can be printed on.
var PageSizes = []string{"A4", "A5", "Letter", "Legal"}

// Options describe the document a worksheet is printed as.
type Options struct {
	// PageSize is one of PageSizes. Empty means DefaultPageSize.
	PageSize string
	// Title is written into the document properties. It must be ASCII.
	Title string
}

// ConvertMarkdownToPDF writes a PDF next to the markdown file and returns its absolute path
func ConvertMarkdownToPDF(markdownPath string, options Options) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	pageSize := options.PageSize
	if pageSize == "" {
		pageSize = DefaultPageSize
	}
	if !slices.Contains(PageSizes, pageSize) {
		return "", fmt.Errorf("unsupported page size %q, valid values are %s", pageSize, strings.Join(PageSizes, ", "))
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", pageSize, pdfPath, "", nil, mdtopdf.LIGHT)
	if options.Title != "" {
		renderer.Pdf.SetTitle(options.Title, false)
	}
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
