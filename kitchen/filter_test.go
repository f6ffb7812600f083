package kitchen

import (
	"testing"

	"forkful/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecipes = []models.Recipe{
	{
		Title: "Weeknight Chicken Curry", Category: "dinner", Rating: 4.7,
		Tags: []string{"curry", "spicy"}, CookingTime: 45, Difficulty: "medium",
		Ingredients: models.IngredientList{"2 chicken breasts", "1 tbsp curry powder"},
		Dietary:     map[string]bool{"glutenFree": true},
	},
	{
		Title: "Garden Salad", Category: "lunch", Rating: 4.2,
		Tags: []string{"fresh", "healthy"}, CookingTime: 10, Difficulty: "easy",
		Ingredients: models.IngredientList{"1 head lettuce", "2 tomatoes"},
		Dietary:     map[string]bool{"vegan": true, "glutenFree": true},
	},
	{
		Title: "Slow Beef Stew", Category: "dinner", Rating: 4.9,
		Tags: []string{"comfort", "hearty"}, CookingTime: 120, Difficulty: "hard",
		Ingredients: models.IngredientList{"2 lbs beef", "4 carrots"},
	},
	{
		Title: "Pancakes", Category: "breakfast", Rating: 3.9,
		Tags: []string{"sweet"}, CookingTime: 20, Difficulty: "easy",
		Ingredients: models.IngredientList{"2 cups flour", "2 eggs"},
	},
}

func titles(recipes []models.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	got := Filter(testRecipes, Criteria{})
	assert.Len(t, got, len(testRecipes))
}

func TestFilterConjunction(t *testing.T) {
	got := Filter(testRecipes, Criteria{Category: "dinner", MinRating: 4.5})
	assert.Equal(t, []string{"Weeknight Chicken Curry", "Slow Beef Stew"}, titles(got))
}

func TestFilterQueryMatchesTitleIngredientOrTag(t *testing.T) {
	assert.Equal(t, []string{"Weeknight Chicken Curry"}, titles(Filter(testRecipes, Criteria{Query: "chicken"})))
	assert.Equal(t, []string{"Slow Beef Stew"}, titles(Filter(testRecipes, Criteria{Query: "CARROT"})))
	assert.Equal(t, []string{"Garden Salad"}, titles(Filter(testRecipes, Criteria{Query: "healthy"})))
}

func TestFilterRequiresAllTags(t *testing.T) {
	got := Filter(testRecipes, Criteria{Tags: []string{"curry", "spicy"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Weeknight Chicken Curry", got[0].Title)

	got = Filter(testRecipes, Criteria{Tags: []string{"curry", "hearty"}})
	assert.Empty(t, got)
}

func TestFilterDietaryFlags(t *testing.T) {
	got := Filter(testRecipes, Criteria{Dietary: []string{"glutenFree"}})
	assert.Equal(t, []string{"Weeknight Chicken Curry", "Garden Salad"}, titles(got))

	got = Filter(testRecipes, Criteria{Dietary: []string{"vegan", "glutenFree"}})
	assert.Equal(t, []string{"Garden Salad"}, titles(got))
}

func TestFilterTimeBuckets(t *testing.T) {
	assert.Equal(t, []string{"Garden Salad", "Pancakes"}, titles(Filter(testRecipes, Criteria{TimeBucket: TimeQuick})))
	assert.Equal(t, []string{"Weeknight Chicken Curry"}, titles(Filter(testRecipes, Criteria{TimeBucket: TimeMedium})))
	assert.Equal(t, []string{"Slow Beef Stew"}, titles(Filter(testRecipes, Criteria{TimeBucket: TimeLong})))
}

func TestTimeBucketDefaultsMissingToQuick(t *testing.T) {
	assert.Equal(t, TimeQuick, TimeBucket(0))
	assert.Equal(t, TimeQuick, TimeBucket(-5))
	assert.Equal(t, TimeQuick, TimeBucket(30))
	assert.Equal(t, TimeMedium, TimeBucket(31))
	assert.Equal(t, TimeMedium, TimeBucket(60))
	assert.Equal(t, TimeLong, TimeBucket(61))
}

func TestFilterPreservesInputOrder(t *testing.T) {
	got := Filter(testRecipes, Criteria{Category: "dinner"})
	assert.Equal(t, []string{"Weeknight Chicken Curry", "Slow Beef Stew"}, titles(got))
}
