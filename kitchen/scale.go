package kitchen

import "strings"

// ScaledIngredient is a parsed ingredient after applying a serving-count
// scale factor, with its human-readable display line. Lifecycle is a single
// calculator session; it is never persisted.
type ScaledIngredient struct {
	ParsedIngredient
	ScaledQuantity float64 `json:"scaledQuantity"`
	Display        string  `json:"display"`
}

// ScaleFactor is target/original servings, guarded so a missing or zero
// original serving count degrades to no scaling instead of a division blowup.
func ScaleFactor(originalServings, targetServings int) float64 {
	if originalServings <= 0 {
		return 1
	}
	return float64(targetServings) / float64(originalServings)
}

// Scale parses each ingredient line, multiplies its quantity by the serving
// ratio, and formats the result. Order is preserved: the output line i always
// corresponds to input line i. Lines with no usable quantity ("salt to
// taste") keep their original text verbatim rather than growing a nonsense
// leading number.
func Scale(originalServings, targetServings int, ingredients []string) []ScaledIngredient {
	factor := ScaleFactor(originalServings, targetServings)

	scaled := make([]ScaledIngredient, 0, len(ingredients))
	for _, line := range ingredients {
		parsed := Parse(line)

		if parsed.Pattern == PatternVerbatim {
			scaled = append(scaled, ScaledIngredient{
				ParsedIngredient: parsed,
				ScaledQuantity:   parsed.Quantity,
				Display:          parsed.OriginalText,
			})
			continue
		}

		quantity := parsed.Quantity * factor
		scaled = append(scaled, ScaledIngredient{
			ParsedIngredient: parsed,
			ScaledQuantity:   quantity,
			Display:          joinDisplay(FormatQuantity(quantity, parsed.Unit), parsed.Item),
		})
	}
	return scaled
}

func joinDisplay(quantity, item string) string {
	if quantity == "" {
		return item
	}
	return quantity + " " + item
}

// EstimateCost sums caller-supplied per-item prices for the ingredients that
// have one. Prices are flat per item for the recipe run and are deliberately
// NOT multiplied by the scaled quantity.
func EstimateCost(ingredients []ScaledIngredient, prices map[string]float64) float64 {
	var total float64
	for _, ing := range ingredients {
		if price, ok := prices[strings.ToLower(strings.TrimSpace(ing.Item))]; ok {
			total += price
		}
	}
	return total
}
