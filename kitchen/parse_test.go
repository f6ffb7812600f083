package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantityUnitItem(t *testing.T) {
	p := Parse("2 cups flour")
	assert.Equal(t, 2.0, p.Quantity)
	assert.Equal(t, "cups", p.Unit)
	assert.Equal(t, "flour", p.Item)
}

func TestParseFractionQuantity(t *testing.T) {
	p := Parse("1/2 cup sugar")
	assert.Equal(t, 0.5, p.Quantity)
	assert.Equal(t, "cup", p.Unit)
	assert.Equal(t, "sugar", p.Item)
}

func TestParseMixedNumber(t *testing.T) {
	p := Parse("1 1/2 cups milk")
	assert.Equal(t, 1.5, p.Quantity)
	assert.Equal(t, "cups", p.Unit)
	assert.Equal(t, "milk", p.Item)
}

func TestParseDecimalQuantity(t *testing.T) {
	p := Parse("0.5 tsp vanilla extract")
	assert.Equal(t, 0.5, p.Quantity)
	assert.Equal(t, "tsp", p.Unit)
	assert.Equal(t, "vanilla extract", p.Item)
}

func TestParseUnknownUnitBecomesItem(t *testing.T) {
	p := Parse("2 large eggs")
	assert.Equal(t, 2.0, p.Quantity)
	assert.Equal(t, "", p.Unit)
	assert.Equal(t, "large eggs", p.Item)
}

func TestParseBareCount(t *testing.T) {
	p := Parse("3 eggs")
	assert.Equal(t, 3.0, p.Quantity)
	assert.Equal(t, "", p.Unit)
	assert.Equal(t, "eggs", p.Item)
}

func TestParseNoLeadingNumberFallsThrough(t *testing.T) {
	p := Parse("salt to taste")
	assert.Equal(t, 1.0, p.Quantity)
	assert.Equal(t, "", p.Unit)
	assert.Equal(t, "salt to taste", p.Item)
	assert.Equal(t, PatternVerbatim, p.Pattern)
}

// Parsing is total: no input produces an error or an empty result.
func TestParseNeverFails(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"salt and pepper to taste",
		"a pinch of love",
		"1/0 cup weird",
		"2",
		"///",
	}
	for _, line := range lines {
		p := Parse(line)
		assert.GreaterOrEqual(t, p.Quantity, 0.0, "line %q", line)
		assert.NotEqual(t, "", p.Pattern, "line %q", line)
	}
}

func TestParsePreservesOriginalText(t *testing.T) {
	p := Parse("  2 cups flour  ")
	assert.Equal(t, "2 cups flour", p.OriginalText)
}
