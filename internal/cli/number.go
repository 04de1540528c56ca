package cli

import (
	"strconv"
	"strings"

	"github.com/at-ishikawa/acreage/internal/conversion"
)

var superscripts = strings.NewReplacer(
	"-", "⁻",
	"0", "⁰",
	"1", "¹",
	"2", "²",
	"3", "³",
	"4", "⁴",
	"5", "⁵",
	"6", "⁶",
	"7", "⁷",
	"8", "⁸",
	"9", "⁹",
)

// renderNumber writes scientific numbers with a superscript exponent, e.g. "2.2957 × 10⁻⁵".
func renderNumber(n conversion.Number) string {
	if n.Mode != conversion.DisplayScientific {
		return n.Text
	}
	return n.Coefficient + " × 10" + superscripts.Replace(strconv.Itoa(n.Exponent))
}
