package kitchen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"forkful/models"
)

// ErrNoRecipes signals an aggregation call with an empty selection. The
// caller should surface it rather than render an empty list.
var ErrNoRecipes = errors.New("no recipes selected")

// Aggregate merges the ingredient lists of the selected recipes into one
// deduplicated, counted, categorized shopping list. Duplicate detection is
// by lowercased trimmed text; quantity is the occurrence count as "Nx".
// Attribution of each item to a source recipe is best-effort: the first
// selected recipe containing the normalized text wins, which may not be the
// true origin when recipes share an ingredient.
func Aggregate(selected []models.Recipe) ([]models.ShoppingListItem, error) {
	if len(selected) == 0 {
		return nil, ErrNoRecipes
	}

	counts := make(map[string]int)
	var order []string
	for _, recipe := range selected {
		for _, line := range recipe.Ingredients {
			key := normalize(line)
			if key == "" {
				continue
			}
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	items := make([]models.ShoppingListItem, 0, len(order))
	for _, key := range order {
		items = append(items, models.ShoppingListItem{
			Name:              key,
			Quantity:          fmt.Sprintf("%dx", counts[key]),
			Category:          Categorize(key),
			SourceRecipeTitle: attributeSource(selected, key),
		})
	}

	rank := make(map[string]int, len(CategoryOrder))
	for i, c := range CategoryOrder {
		rank[c] = i
	}
	// Stable sort keeps first-seen order within each category.
	sort.SliceStable(items, func(i, j int) bool {
		return rank[items[i].Category] < rank[items[j].Category]
	})

	return items, nil
}

// CustomItem builds a user-added entry that was not sourced from any recipe.
func CustomItem(name string) models.ShoppingListItem {
	return models.ShoppingListItem{
		Name:              strings.TrimSpace(name),
		Quantity:          "1x",
		Category:          Categorize(name),
		SourceRecipeTitle: "Custom item",
	}
}

func normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

func attributeSource(selected []models.Recipe, key string) string {
	for _, recipe := range selected {
		for _, line := range recipe.Ingredients {
			if strings.Contains(normalize(line), key) {
				return recipe.Title
			}
		}
	}
	return ""
}
