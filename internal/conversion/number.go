package conversion

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayMode tells the view layer how a Number has to be rendered.
type DisplayMode int

const (
	DisplayFixed DisplayMode = iota
	DisplayInteger
	DisplayScientific
)

// Number is a formatted conversion result.
// Scientific numbers keep the coefficient and the exponent apart so that a
// view can render the exponent as it likes (superscript, caret, ...).
type Number struct {
	Mode        DisplayMode
	Text        string
	Coefficient string
	Exponent    int

	value float64
}

// String returns the plain text form, e.g. "2", "108900" or "2.2957 × 10^-5".
func (n Number) String() string {
	if n.Mode == DisplayScientific {
		return fmt.Sprintf("%s × 10^%d", n.Coefficient, n.Exponent)
	}
	return n.Text
}

// Float returns the value that is displayed, after rounding.
func (n Number) Float() float64 {
	return n.value
}

func newFixed(v float64) Number {
	text := strconv.FormatFloat(v, 'f', fixedDecimals, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimSuffix(strings.TrimRight(text, "0"), ".")
	}
	value, _ := strconv.ParseFloat(text, 64)
	return Number{
		Mode:  DisplayFixed,
		Text:  text,
		value: value,
	}
}

func newInteger(v float64) Number {
	text := strconv.FormatFloat(v, 'f', 0, 64)
	return Number{
		Mode:  DisplayInteger,
		Text:  text,
		value: v,
	}
}

func newScientific(v float64) Number {
	text := strconv.FormatFloat(v, 'e', scientificDecimals, 64)
	coefficient, exponent, _ := strings.Cut(text, "e")
	exp, _ := strconv.Atoi(exponent)
	value, _ := strconv.ParseFloat(text, 64)
	return Number{
		Mode:        DisplayScientific,
		Coefficient: coefficient,
		Exponent:    exp,
		value:       value,
	}
}
