package shopping

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"forkful/globals"
	"forkful/localstore"
	"forkful/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func authedRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(r.Context(), globals.UserIDKey, "user-1")
	return r.WithContext(ctx)
}

func sampleItems() []models.ShoppingListItem {
	return []models.ShoppingListItem{
		{Name: "garlic", Quantity: "2x", Category: "produce", SourceRecipeTitle: "Pasta"},
		{Name: "1 cup flour", Quantity: "1x", Category: "pantry", SourceRecipeTitle: "Bread"},
	}
}

func saveSample(t *testing.T, name string) {
	t.Helper()
	w := httptest.NewRecorder()
	SaveList(w, authedRequest("POST", "/api/v1/shopping/lists", saveRequest{Name: name, Items: sampleItems()}), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

// The database returns $in matches in collection order; attribution and tie
// order must follow the order the client selected.
func TestOrderBySelection(t *testing.T) {
	pasta := models.Recipe{ID: primitive.NewObjectID(), Title: "Pasta"}
	stew := models.Recipe{ID: primitive.NewObjectID(), Title: "Stew"}

	ordered := orderBySelection(
		[]primitive.ObjectID{stew.ID, pasta.ID},
		[]models.Recipe{pasta, stew},
	)
	require.Len(t, ordered, 2)
	assert.Equal(t, "Stew", ordered[0].Title)
	assert.Equal(t, "Pasta", ordered[1].Title)
}

func TestOrderBySelectionKeepsDuplicates(t *testing.T) {
	pasta := models.Recipe{ID: primitive.NewObjectID(), Title: "Pasta"}

	ordered := orderBySelection(
		[]primitive.ObjectID{pasta.ID, pasta.ID},
		[]models.Recipe{pasta},
	)
	require.Len(t, ordered, 2)
	assert.Equal(t, ordered[0].ID, ordered[1].ID)
}

func TestOrderBySelectionDropsMissing(t *testing.T) {
	pasta := models.Recipe{ID: primitive.NewObjectID(), Title: "Pasta"}

	ordered := orderBySelection(
		[]primitive.ObjectID{primitive.NewObjectID(), pasta.ID},
		[]models.Recipe{pasta},
	)
	require.Len(t, ordered, 1)
	assert.Equal(t, "Pasta", ordered[0].Title)
}

func TestSaveAndGetLists(t *testing.T) {
	Store = localstore.NewMemoryStore()
	saveSample(t, "weekend shop")

	w := httptest.NewRecorder()
	GetLists(w, authedRequest("GET", "/api/v1/shopping/lists", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lists map[string]models.SavedShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Contains(t, lists, "weekend shop")
	assert.Len(t, lists["weekend shop"].Items, 2)
}

func TestSaveListRequiresName(t *testing.T) {
	Store = localstore.NewMemoryStore()
	w := httptest.NewRecorder()
	SaveList(w, authedRequest("POST", "/api/v1/shopping/lists", saveRequest{Name: "  ", Items: sampleItems()}), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Saving under an existing name replaces the snapshot; nothing merges.
func TestSaveListOverwrites(t *testing.T) {
	Store = localstore.NewMemoryStore()
	saveSample(t, "weekly")

	w := httptest.NewRecorder()
	SaveList(w, authedRequest("POST", "/api/v1/shopping/lists", saveRequest{
		Name:  "weekly",
		Items: []models.ShoppingListItem{{Name: "milk", Quantity: "1x", Category: "dairy"}},
	}), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	GetLists(w, authedRequest("GET", "/api/v1/shopping/lists", nil), nil)
	var lists map[string]models.SavedShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	require.Len(t, lists["weekly"].Items, 1)
	assert.Equal(t, "milk", lists["weekly"].Items[0].Name)
}

func TestCheckItem(t *testing.T) {
	Store = localstore.NewMemoryStore()
	saveSample(t, "weekly")

	params := httprouter.Params{{Key: "name", Value: "weekly"}}
	w := httptest.NewRecorder()
	CheckItem(w, authedRequest("PUT", "/api/v1/shopping/lists/weekly/check",
		checkRequest{ItemName: "garlic", Checked: true}), params)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	GetLists(w, authedRequest("GET", "/api/v1/shopping/lists", nil), nil)
	var lists map[string]models.SavedShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	assert.True(t, lists["weekly"].Items[0].Checked)
	assert.False(t, lists["weekly"].Items[1].Checked)
}

func TestCheckItemUnknownItem(t *testing.T) {
	Store = localstore.NewMemoryStore()
	saveSample(t, "weekly")

	params := httprouter.Params{{Key: "name", Value: "weekly"}}
	w := httptest.NewRecorder()
	CheckItem(w, authedRequest("PUT", "/api/v1/shopping/lists/weekly/check",
		checkRequest{ItemName: "caviar", Checked: true}), params)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCustomItem(t *testing.T) {
	Store = localstore.NewMemoryStore()
	saveSample(t, "weekly")

	params := httprouter.Params{{Key: "name", Value: "weekly"}}
	w := httptest.NewRecorder()
	AddCustomItem(w, authedRequest("POST", "/api/v1/shopping/lists/weekly/items",
		customItemRequest{Name: "paper towels"}), params)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	GetLists(w, authedRequest("GET", "/api/v1/shopping/lists", nil), nil)
	var lists map[string]models.SavedShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lists))
	items := lists["weekly"].Items
	require.Len(t, items, 3)
	assert.Equal(t, "paper towels", items[2].Name)
	assert.Equal(t, "Custom item", items[2].SourceRecipeTitle)
}

func TestDeleteList(t *testing.T) {
	Store = localstore.NewMemoryStore()
	saveSample(t, "weekly")

	params := httprouter.Params{{Key: "name", Value: "weekly"}}
	w := httptest.NewRecorder()
	DeleteList(w, authedRequest("DELETE", "/api/v1/shopping/lists/weekly", nil), params)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	DeleteList(w, authedRequest("DELETE", "/api/v1/shopping/lists/weekly", nil), params)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
