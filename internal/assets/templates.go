package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const worksheetTemplateName = "worksheet.md.go.tmpl"

//go:embed templates/worksheet.md.go.tmpl
var fallbackWorksheetTemplate string

// WorksheetTemplate is the top-level data structure for worksheet templates
type WorksheetTemplate struct {
	ID       string
	Problems []WorksheetProblem
}

// WorksheetProblem is a single problem with its worked step for the answer key
type WorksheetProblem struct {
	Number     int
	Question   string
	TargetUnit string
	Main       string
	Formula    string
	Answer     string
}

func ParseWorksheetTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, worksheetTemplateName, fallbackWorksheetTemplate)
}

func WriteWorksheet(output io.Writer, templatePath string, templateData WorksheetTemplate) error {
	tmpl, err := ParseWorksheetTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseWorksheetTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
	}

	// First, try to read from the filesystem
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
