package kitchen

import (
	"testing"

	"forkful/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeWith(title string, ingredients ...string) models.Recipe {
	return models.Recipe{Title: title, Ingredients: ingredients}
}

func TestAggregateEmptySelection(t *testing.T) {
	items, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrNoRecipes)
	assert.Nil(t, items)

	items, err = Aggregate([]models.Recipe{})
	assert.ErrorIs(t, err, ErrNoRecipes)
	assert.Nil(t, items)
}

func TestAggregateCountsDuplicates(t *testing.T) {
	items, err := Aggregate([]models.Recipe{
		recipeWith("Pasta", "garlic", "1 lb pasta"),
		recipeWith("Stir Fry", "Garlic ", "2 cups rice"),
	})
	require.NoError(t, err)

	var garlic *models.ShoppingListItem
	for i := range items {
		if items[i].Name == "garlic" {
			garlic = &items[i]
		}
	}
	require.NotNil(t, garlic, "expected a single merged garlic entry")
	assert.Equal(t, "2x", garlic.Quantity)
	assert.Equal(t, CategoryProduce, garlic.Category)
}

func TestAggregateSingleOccurrenceQuantity(t *testing.T) {
	items, err := Aggregate([]models.Recipe{recipeWith("Toast", "2 slices bread")})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1x", items[0].Quantity)
}

func TestAggregateCategorySortOrder(t *testing.T) {
	items, err := Aggregate([]models.Recipe{
		recipeWith("Mixed", "salt", "1 cup flour", "chicken breast", "2 cups milk", "1 onion"),
	})
	require.NoError(t, err)
	require.Len(t, items, 5)

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.Category
	}
	assert.Equal(t, []string{
		CategoryProduce, CategoryDairy, CategoryMeat, CategoryPantry, CategorySpices,
	}, got)
}

func TestAggregateStableWithinCategory(t *testing.T) {
	items, err := Aggregate([]models.Recipe{
		recipeWith("Salad", "1 onion", "2 tomatoes", "1 cucumber"),
	})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "1 onion", items[0].Name)
	assert.Equal(t, "2 tomatoes", items[1].Name)
	assert.Equal(t, "1 cucumber", items[2].Name)
}

func TestAggregateSourceAttribution(t *testing.T) {
	items, err := Aggregate([]models.Recipe{
		recipeWith("First Pasta", "garlic"),
		recipeWith("Second Curry", "garlic", "1 tsp turmeric"),
	})
	require.NoError(t, err)

	for _, item := range items {
		switch item.Name {
		case "garlic":
			// Best-effort: the first selected recipe containing it wins.
			assert.Equal(t, "First Pasta", item.SourceRecipeTitle)
		case "1 tsp turmeric":
			assert.Equal(t, "Second Curry", item.SourceRecipeTitle)
		}
	}
}

func TestCustomItem(t *testing.T) {
	item := CustomItem("  paper towels ")
	assert.Equal(t, "paper towels", item.Name)
	assert.Equal(t, "1x", item.Quantity)
	assert.Equal(t, CategoryOther, item.Category)
	assert.Equal(t, "Custom item", item.SourceRecipeTitle)
}
