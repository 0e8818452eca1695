package summarizer

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// formatValue rounds v to precision decimals and groups thousands.
func formatValue(v float64, precision int) string {
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(v*scale) / scale
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return humanize.CommafWithDigits(rounded, precision)
}

// formatRatio prints v with exactly precision decimals.
func formatRatio(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func directionWord(delta float64) string {
	if delta >= 0 {
		return "increased"
	}
	return "decreased"
}
