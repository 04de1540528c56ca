// Package worksheet builds printable sets of practice problems with an answer key.
package worksheet

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/at-ishikawa/acreage/internal/assets"
	"github.com/at-ishikawa/acreage/internal/conversion"
	"github.com/at-ishikawa/acreage/internal/pdf"
	"github.com/at-ishikawa/acreage/internal/practice"
)

const MaxProblems = 100

type Problem struct {
	practice.ProblemState
	Step conversion.Step
}

type Worksheet struct {
	ID       string
	Problems []Problem
}

// Build draws count problems from the generator.
func Build(generator *practice.Generator, count int) (Worksheet, error) {
	if count < 1 || count > MaxProblems {
		return Worksheet{}, fmt.Errorf("count must be between 1 and %d, got %d", MaxProblems, count)
	}

	problems := make([]Problem, 0, count)
	for len(problems) < count {
		state := generator.Next()
		v, err := practice.ParseValue(state.Value)
		if err != nil {
			return Worksheet{}, fmt.Errorf("practice.ParseValue(%q) > %w", state.Value, err)
		}
		problems = append(problems, Problem{
			ProblemState: state,
			Step:         conversion.NewStep(state.Direction, v),
		})
	}
	return Worksheet{
		ID:       uuid.NewString(),
		Problems: problems,
	}, nil
}

// Write renders the worksheet as markdown.
func Write(output io.Writer, templatePath string, ws Worksheet) error {
	data := assets.WorksheetTemplate{
		ID:       ws.ID,
		Problems: make([]assets.WorksheetProblem, 0, len(ws.Problems)),
	}
	for i, problem := range ws.Problems {
		data.Problems = append(data.Problems, assets.WorksheetProblem{
			Number:     i + 1,
			Question:   problem.Question(),
			TargetUnit: strings.ToLower(problem.Direction.TargetUnit()),
			Main:       problem.Step.Main,
			Formula:    problem.Step.Formula,
			Answer:     problem.Step.Answer.String(),
		})
	}
	if err := assets.WriteWorksheet(output, templatePath, data); err != nil {
		return fmt.Errorf("assets.WriteWorksheet() > %w", err)
	}
	return nil
}

// Output writes the worksheet into outputDir and returns the paths of written files.
// A PDF is written as well when pdfOptions is not nil.
func Output(outputDir string, templatePath string, ws Worksheet, pdfOptions *pdf.Options) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}

	markdownPath := filepath.Join(outputDir, fileName(ws))
	file, err := os.Create(markdownPath)
	if err != nil {
		return nil, fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	if err := Write(file, templatePath, ws); err != nil {
		_ = file.Close()
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("file.Close() > %w", err)
	}
	slog.Debug("wrote a worksheet", slog.String("path", markdownPath), slog.Int("problems", len(ws.Problems)))

	paths := []string{markdownPath}
	if pdfOptions == nil {
		return paths, nil
	}

	options := *pdfOptions
	if options.Title == "" {
		options.Title = "Worksheet " + shortID(ws)
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath, options)
	if err != nil {
		return paths, fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", markdownPath, err)
	}
	return append(paths, pdfPath), nil
}

func shortID(ws Worksheet) string {
	if len(ws.ID) > 8 {
		return ws.ID[:8]
	}
	return ws.ID
}

func fileName(ws Worksheet) string {
	return "worksheet-" + shortID(ws) + ".md"
}
