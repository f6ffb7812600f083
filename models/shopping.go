package models

// ShoppingListItem is one line of an aggregated shopping list. Quantity is
// the "Nx" occurrence count across the selected recipes, not a merged
// measurement. SourceRecipeTitle is best-effort attribution: when several
// recipes share an ingredient it names the first one that contains it.
type ShoppingListItem struct {
	Name              string `json:"name"`
	Quantity          string `json:"quantity"`
	Category          string `json:"category"`
	Checked           bool   `json:"checked"`
	SourceRecipeTitle string `json:"sourceRecipeTitle"`
}

// SavedShoppingList is an opaque snapshot under a user-chosen name. It keeps
// no relational tie to its source recipes; later recipe edits do not
// propagate, and re-generating a list never merges with a saved one.
type SavedShoppingList struct {
	Name      string             `json:"name"`
	Items     []ShoppingListItem `json:"items"`
	CreatedAt int64              `json:"createdAt"`
}

// MealPlan is a week of recipe assignments keyed by day then meal slot
// ("monday" -> "dinner" -> recipe id).
type MealPlan struct {
	Days      map[string]map[string]string `json:"days"`
	UpdatedAt int64                        `json:"updatedAt"`
}
