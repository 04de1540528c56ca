package worksheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/acreage/internal/conversion"
	mock_practice "github.com/at-ishikawa/acreage/internal/mocks/practice"
	"github.com/at-ishikawa/acreage/internal/pdf"
	"github.com/at-ishikawa/acreage/internal/practice"
)

func TestBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRand := mock_practice.NewMockRand(ctrl)
	gomock.InOrder(
		mockRand.EXPECT().IntN(2).Return(0),
		mockRand.EXPECT().IntN(199).Return(3),
		mockRand.EXPECT().IntN(2).Return(1),
		mockRand.EXPECT().IntN(199).Return(4),
	)

	got, err := Build(practice.NewGenerator(mockRand, 100, ""), 2)
	require.NoError(t, err)

	_, err = uuid.Parse(got.ID)
	assert.NoError(t, err)
	assert.Equal(t, []Problem{
		{
			ProblemState: practice.ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "87120"},
			Step:         conversion.NewStep(conversion.DirectionSqftToAcres, 87120),
		},
		{
			ProblemState: practice.ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "2.5"},
			Step:         conversion.NewStep(conversion.DirectionAcresToSqft, 2.5),
		},
	}, got.Problems)
}

func TestBuild_InvalidCount(t *testing.T) {
	generator := practice.NewGenerator(practice.NewRand(1), 100, "")
	for _, count := range []int{0, -1, MaxProblems + 1} {
		_, err := Build(generator, count)
		assert.Error(t, err, "count=%d", count)
	}
}

func testWorksheet() Worksheet {
	return Worksheet{
		ID: "4f0c1a52-7d1e-4c55-9a8e-0d1f0d0c9b11",
		Problems: []Problem{
			{
				ProblemState: practice.ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "87120"},
				Step:         conversion.NewStep(conversion.DirectionSqftToAcres, 87120),
			},
			{
				ProblemState: practice.ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "2.5"},
				Step:         conversion.NewStep(conversion.DirectionAcresToSqft, 2.5),
			},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", testWorksheet()))

	got := buf.String()
	assert.Contains(t, got, "Worksheet `4f0c1a52-7d1e-4c55-9a8e-0d1f0d0c9b11`")
	assert.Contains(t, got, "1. Convert 87,120 square feet to acres: ______________ acres")
	assert.Contains(t, got, "2. Convert 2.5 acres to square feet: ______________ square feet")
	assert.Contains(t, got, "1. Divide square feet by 43,560: `87,120 ÷ 43,560` = **2** acres")
	assert.Contains(t, got, "2. Multiply acres by 43,560: `2.5 × 43,560` = **108900** square feet")
}

func TestOutput(t *testing.T) {
	tests := []struct {
		name       string
		pdfOptions *pdf.Options
		wantFiles  []string
		wantTitle  string
		wantErr    bool
	}{
		{
			name:      "markdown only",
			wantFiles: []string{"worksheet-4f0c1a52.md"},
		},
		{
			name:       "markdown and PDF titled by the worksheet",
			pdfOptions: &pdf.Options{PageSize: "A4"},
			wantFiles:  []string{"worksheet-4f0c1a52.md", "worksheet-4f0c1a52.pdf"},
			wantTitle:  "/Title (Worksheet 4f0c1a52)",
		},
		{
			name:       "custom title",
			pdfOptions: &pdf.Options{Title: "Unit 3 homework"},
			wantFiles:  []string{"worksheet-4f0c1a52.md", "worksheet-4f0c1a52.pdf"},
			wantTitle:  "/Title (Unit 3 homework)",
		},
		{
			name:       "unsupported page size",
			pdfOptions: &pdf.Options{PageSize: "B5"},
			wantFiles:  []string{"worksheet-4f0c1a52.md"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := filepath.Join(t.TempDir(), "worksheets")

			paths, err := Output(outputDir, "", testWorksheet(), tt.pdfOptions)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, paths, len(tt.wantFiles))
			for i, want := range tt.wantFiles {
				assert.Equal(t, want, filepath.Base(paths[i]))
				_, err := os.Stat(paths[i])
				assert.NoError(t, err)
			}

			content, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			assert.Contains(t, string(content), "## Answer Key")

			if tt.wantTitle != "" {
				content, err := os.ReadFile(paths[1])
				require.NoError(t, err)
				assert.Contains(t, string(content), tt.wantTitle)
			}
		})
	}
}
