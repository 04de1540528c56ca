package practice

import (
	"testing"

	"github.com/at-ishikawa/acreage/internal/conversion"
	mock_practice "github.com/at-ishikawa/acreage/internal/mocks/practice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerator_Next(t *testing.T) {
	tests := []struct {
		name      string
		maxAcres  int
		direction conversion.Direction
		setupMock func(m *mock_practice.MockRand)
		want      ProblemState
	}{
		{
			name:     "square feet to acres",
			maxAcres: 100,
			setupMock: func(m *mock_practice.MockRand) {
				gomock.InOrder(
					m.EXPECT().IntN(2).Return(0),
					m.EXPECT().IntN(199).Return(3),
				)
			},
			want: ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "87120"},
		},
		{
			name:     "acres to square feet",
			maxAcres: 100,
			setupMock: func(m *mock_practice.MockRand) {
				gomock.InOrder(
					m.EXPECT().IntN(2).Return(1),
					m.EXPECT().IntN(199).Return(4),
				)
			},
			want: ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "2.5"},
		},
		{
			name:     "largest acreage below the bound",
			maxAcres: 10,
			setupMock: func(m *mock_practice.MockRand) {
				gomock.InOrder(
					m.EXPECT().IntN(2).Return(1),
					m.EXPECT().IntN(19).Return(18),
				)
			},
			want: ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "9.5"},
		},
		{
			name:      "fixed direction does not draw one",
			maxAcres:  100,
			direction: conversion.DirectionSqftToAcres,
			setupMock: func(m *mock_practice.MockRand) {
				m.EXPECT().IntN(199).Return(0)
			},
			want: ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "21780"},
		},
		{
			name:     "invalid bound falls back to the default",
			maxAcres: 0,
			setupMock: func(m *mock_practice.MockRand) {
				gomock.InOrder(
					m.EXPECT().IntN(2).Return(1),
					m.EXPECT().IntN(199).Return(198),
				)
			},
			want: ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "99.5"},
		},
		{
			name:      "bound above the limit is clamped",
			maxAcres:  4611686018427387905,
			direction: conversion.DirectionSqftToAcres,
			setupMock: func(m *mock_practice.MockRand) {
				m.EXPECT().IntN(MaxAcresLimit*2 - 1).Return(MaxAcresLimit*2 - 2)
			},
			want: ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "43538220"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRand := mock_practice.NewMockRand(ctrl)
			tt.setupMock(mockRand)

			got := NewGenerator(mockRand, tt.maxAcres, tt.direction).Next()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_ValuesAreAccepted(t *testing.T) {
	generator := NewGenerator(NewRand(42), 100, "")
	directions := map[conversion.Direction]int{}
	for i := 0; i < 500; i++ {
		problem := generator.Next()
		directions[problem.Direction]++

		require.True(t, Accepts(problem.Value), "value %q", problem.Value)
		v, err := ParseValue(problem.Value)
		require.NoError(t, err)

		acres := v
		if problem.Direction == conversion.DirectionSqftToAcres {
			acres = v / conversion.SquareFeetPerAcre
		}
		assert.Greater(t, acres, 0.0)
		assert.Less(t, acres, 100.0)
		assert.Equal(t, 0.0, acres*2-float64(int(acres*2)), "acreage %v is not a whole or half acre", acres)
	}
	assert.Len(t, directions, 2)
}

func TestGenerator_LargestBoundStaysInRange(t *testing.T) {
	generator := NewGenerator(NewRand(7), 100000000, conversion.DirectionSqftToAcres)
	for i := 0; i < 500; i++ {
		problem := generator.Next()
		v, err := ParseValue(problem.Value)
		require.NoError(t, err, "value %q", problem.Value)
		assert.Less(t, v/conversion.SquareFeetPerAcre, float64(MaxAcresLimit))
	}
}

func TestNewRand(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestProblemState_Question(t *testing.T) {
	assert.Equal(t, "Convert 87,120 square feet to acres",
		ProblemState{Direction: conversion.DirectionSqftToAcres, Value: "87120"}.Question())
	assert.Equal(t, "Convert 2.5 acres to square feet",
		ProblemState{Direction: conversion.DirectionAcresToSqft, Value: "2.5"}.Question())
	assert.Equal(t, "Convert Acres to Square Feet",
		ProblemState{Direction: conversion.DirectionAcresToSqft, Value: ""}.Question())
}
