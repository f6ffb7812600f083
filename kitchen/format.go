package kitchen

import (
	"math"
	"strconv"
)

// Common kitchen fractions, matched exactly after rounding to 2 decimals.
// No general fraction reduction is attempted.
var fractionText = map[float64]string{
	0.25: "1/4",
	0.33: "1/3",
	0.5:  "1/2",
	0.67: "2/3",
	0.75: "3/4",
}

// FormatQuantity renders a scaled amount as cooks write it: "1/2 cup",
// "2.25 cups", "3". A zero amount renders as the empty string.
func FormatQuantity(amount float64, unit string) string {
	if amount == 0 {
		return ""
	}

	rounded := math.Round(amount*100) / 100

	text, ok := fractionText[rounded]
	if !ok {
		text = strconv.FormatFloat(rounded, 'f', -1, 64)
	}

	if unit == "" {
		return text
	}
	return text + " " + unit
}
