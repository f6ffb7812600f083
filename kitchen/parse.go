package kitchen

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern names recorded on ParsedIngredient so callers can tell how a line
// was understood. A verbatim line carried no usable quantity.
const (
	PatternMixed    = "mixed"    // "1 1/2 cups flour"
	PatternUnit     = "unit"     // "2 cups flour"
	PatternBare     = "bare"     // "3 eggs"
	PatternVerbatim = "verbatim" // "salt and pepper to taste"
)

// ParsedIngredient is the structured form of one free-text ingredient line.
// It is derived state: never persisted, recomputed from the recipe text.
type ParsedIngredient struct {
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Item         string  `json:"item"`
	OriginalText string  `json:"originalText"`
	Pattern      string  `json:"-"`
}

type pattern struct {
	name string
	re   *regexp.Regexp
	// handle turns a regex match into a parsed ingredient, or declines.
	handle func(m []string) (ParsedIngredient, bool)
}

// Patterns are tried in order; the first handler that accepts wins. Parsing
// is total: the last entry matches every line.
var patterns = []pattern{
	{
		name: PatternMixed,
		re:   regexp.MustCompile(`^(\d+)\s+(\d+/\d+)\s+(\S+)\s+(.+)$`),
		handle: func(m []string) (ParsedIngredient, bool) {
			whole := parseNumber(m[1])
			frac, ok := parseFraction(m[2])
			if !ok {
				return ParsedIngredient{}, false
			}
			unit, item := splitUnit(m[3], m[4])
			return ParsedIngredient{Quantity: whole + frac, Unit: unit, Item: item}, true
		},
	},
	{
		name: PatternUnit,
		re:   regexp.MustCompile(`^(\S+)\s+(\S+)\s+(.+)$`),
		handle: func(m []string) (ParsedIngredient, bool) {
			if !looksNumeric(m[1]) {
				return ParsedIngredient{}, false
			}
			unit, item := splitUnit(m[2], m[3])
			return ParsedIngredient{Quantity: parseNumber(m[1]), Unit: unit, Item: item}, true
		},
	},
	{
		name: PatternBare,
		re:   regexp.MustCompile(`^(\S+)\s+(.+)$`),
		handle: func(m []string) (ParsedIngredient, bool) {
			if !looksNumeric(m[1]) {
				return ParsedIngredient{}, false
			}
			return ParsedIngredient{Quantity: parseNumber(m[1]), Unit: "", Item: m[2]}, true
		},
	},
	{
		name: PatternVerbatim,
		re:   regexp.MustCompile(`^(.*)$`),
		handle: func(m []string) (ParsedIngredient, bool) {
			return ParsedIngredient{Quantity: 1, Unit: "", Item: m[1]}, true
		},
	},
}

// Parse converts a free-text ingredient line into its structured form. It
// never fails: a line it cannot read becomes quantity 1 with the whole line
// as the item.
func Parse(line string) ParsedIngredient {
	trimmed := strings.TrimSpace(line)
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		parsed, ok := p.handle(m)
		if !ok {
			continue
		}
		parsed.OriginalText = trimmed
		parsed.Pattern = p.name
		return parsed
	}
	// Unreachable: the verbatim pattern matches everything.
	return ParsedIngredient{Quantity: 1, Item: trimmed, OriginalText: trimmed, Pattern: PatternVerbatim}
}

var knownUnits = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true,
	"kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "ml": true,
	"liter": true, "liters": true, "l": true,
	"pinch": true, "pinches": true, "dash": true,
	"clove": true, "cloves": true,
	"slice": true, "slices": true,
	"can": true, "cans": true,
	"stick": true, "sticks": true,
	"piece": true, "pieces": true,
	"bunch": true, "bunches": true,
	"quart": true, "quarts": true,
	"pint": true, "pints": true,
}

// splitUnit decides whether the token after the number is a measurement unit
// or the start of the item ("2 cups flour" vs "2 large eggs").
func splitUnit(token, rest string) (unit, item string) {
	if knownUnits[strings.ToLower(token)] {
		return token, rest
	}
	return "", token + " " + rest
}

func looksNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && r != '.' && r != '/' {
			return false
		}
	}
	return true
}

// parseNumber reads "2", "0.5" or "1/2"; anything unreadable defaults to 1.
func parseNumber(token string) float64 {
	if strings.Contains(token, "/") {
		if f, ok := parseFraction(token); ok {
			return f
		}
		return 1
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 1
	}
	return f
}

func parseFraction(token string) (float64, bool) {
	parts := strings.SplitN(token, "/", 2)
	if len(parts) != 2 {
		return 0, false
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}
