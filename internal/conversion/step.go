package conversion

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const factorLabel = "43,560"

var printer = message.NewPrinter(language.English)

// Step is the single worked step of a conversion.
type Step struct {
	Main    string
	Formula string
	Answer  Number
}

// NewStep describes how value is converted in the given direction.
func NewStep(direction Direction, value float64) Step {
	if direction == DirectionAcresToSqft {
		return Step{
			Main:    "Multiply acres by " + factorLabel,
			Formula: fmt.Sprintf("%s × %s", strconv.FormatFloat(value, 'f', -1, 64), factorLabel),
			Answer:  AcresToSqft(value),
		}
	}
	return Step{
		Main:    "Divide square feet by " + factorLabel,
		Formula: fmt.Sprintf("%s ÷ %s", FormatGrouped(value), factorLabel),
		Answer:  SqftToAcres(value),
	}
}

// FormatGrouped formats v with thousand separators and at most 3 decimals.
func FormatGrouped(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}
