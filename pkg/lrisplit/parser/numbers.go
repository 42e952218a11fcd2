package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/JF-WK/wk-compta/pkg/lrisplit/models"
)

// thousandsSeparators are stripped before parsing: ordinary space,
// no-break space and narrow no-break space.
var thousandsSeparators = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "")

// NormalizeNumber converts a cell to a float using the comma-decimal
// convention. It returns NaN for blanks, the literal "nan" and anything
// that does not parse. It never panics.
func NormalizeNumber(v models.Value) float64 {
	return NormalizeText(v.String())
}

// NormalizeText is NormalizeNumber for raw text.
func NormalizeText(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN()
	}
	s = thousandsSeparators.Replace(s)
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
