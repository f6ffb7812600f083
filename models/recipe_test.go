package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientListDecodesArray(t *testing.T) {
	var recipe Recipe
	err := json.Unmarshal([]byte(`{"ingredients":["2 cups flour","1 cup sugar"]}`), &recipe)
	require.NoError(t, err)
	assert.Equal(t, IngredientList{"2 cups flour", "1 cup sugar"}, recipe.Ingredients)
}

// Legacy clients sent a single comma-joined string; it converts once here
// and nowhere else.
func TestIngredientListDecodesLegacyString(t *testing.T) {
	var recipe Recipe
	err := json.Unmarshal([]byte(`{"ingredients":"2 cups flour, 1 cup sugar , salt to taste"}`), &recipe)
	require.NoError(t, err)
	assert.Equal(t, IngredientList{"2 cups flour", "1 cup sugar", "salt to taste"}, recipe.Ingredients)
}

func TestIngredientListRejectsOtherShapes(t *testing.T) {
	var recipe Recipe
	err := json.Unmarshal([]byte(`{"ingredients":42}`), &recipe)
	assert.Error(t, err)
}

func TestIngredientListEncodesAsArray(t *testing.T) {
	out, err := json.Marshal(IngredientList{"2 cups flour"})
	require.NoError(t, err)
	assert.JSONEq(t, `["2 cups flour"]`, string(out))
}
