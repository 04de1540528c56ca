package conversion

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Direction is the way a practice problem converts a value.
type Direction string

const (
	DirectionSqftToAcres Direction = "sqft-to-acres"
	DirectionAcresToSqft Direction = "acres-to-sqft"
)

var (
	_ pflag.Value = (*Direction)(nil)
)

// Set implements pflag.Value.
func (d *Direction) Set(v string) error {
	switch v {
	case string(DirectionSqftToAcres):
		*d = DirectionSqftToAcres
	case string(DirectionAcresToSqft):
		*d = DirectionAcresToSqft
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, DirectionSqftToAcres, DirectionAcresToSqft)
	}
	return nil
}

// String implements pflag.Value.
func (d *Direction) String() string {
	if d == nil {
		return ""
	}
	return string(*d)
}

// Type implements pflag.Value.
func (d *Direction) Type() string {
	return "Direction"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == DirectionAcresToSqft {
		return DirectionSqftToAcres
	}
	return DirectionAcresToSqft
}

// SourceUnit is the unit of the value the learner starts from.
func (d Direction) SourceUnit() string {
	if d == DirectionAcresToSqft {
		return "Acres"
	}
	return "Square Feet"
}

// TargetUnit is the unit of the answer.
func (d Direction) TargetUnit() string {
	return d.Toggle().SourceUnit()
}

func (d Direction) Placeholder() string {
	if d == DirectionAcresToSqft {
		return "Enter acres"
	}
	return "Enter square feet"
}

// Title is the label of the convert action.
func (d Direction) Title() string {
	return fmt.Sprintf("Convert %s to %s", d.SourceUnit(), d.TargetUnit())
}
