// Package conversion converts areas between acres and square feet and
// describes the worked step of a conversion.
package conversion

import (
	"math"
)

const (
	// SquareFeetPerAcre is the number of square feet in one acre.
	SquareFeetPerAcre = 43560

	// Results below this many acres are written in scientific notation.
	scientificThreshold = 0.0001
	scientificDecimals  = 4
	fixedDecimals       = 6

	// DefaultAcresTolerance is the accepted error of an answer given in acres.
	DefaultAcresTolerance = 0.0001
	// DefaultSquareFeetTolerance is the accepted error of an answer given in square feet.
	DefaultSquareFeetTolerance = 1
)

// DirectionSqftToAcres converts square feet into acres.
func SqftToAcres(sqft float64) Number {
	acres := sqft / SquareFeetPerAcre
	if acres > 0 && acres < scientificThreshold {
		return newScientific(acres)
	}
	return newFixed(acres)
}

// DirectionAcresToSqft converts acres into square feet rounded to the nearest integer.
func AcresToSqft(acres float64) Number {
	return newInteger(math.Round(acres * SquareFeetPerAcre))
}

// Convert converts value in the given direction.
func Convert(direction Direction, value float64) Number {
	if direction == DirectionAcresToSqft {
		return AcresToSqft(value)
	}
	return SqftToAcres(value)
}

// DefaultTolerance returns the tolerance matching the granularity of the answer
// that each direction displays.
func DefaultTolerance(direction Direction) float64 {
	if direction == DirectionAcresToSqft {
		return DefaultSquareFeetTolerance
	}
	return DefaultAcresTolerance
}
