// Package shopping exposes the shopping-list aggregator over REST and keeps
// saved lists in the per-user localstore, never in the document database.
package shopping

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"forkful/db"
	"forkful/kitchen"
	"forkful/localstore"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is injected at startup; redis in production, memory in tests.
var Store localstore.Store = localstore.NewMemoryStore()

type aggregateRequest struct {
	RecipeIDs []string `json:"recipeIds"`
}

// Aggregate builds a shopping list from the selected recipes. An empty
// selection is a client error, not an empty list.
func Aggregate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req aggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(req.RecipeIDs))
	for _, hex := range req.RecipeIDs {
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID: "+hex)
			return
		}
		ids = append(ids, oid)
	}

	var selected []models.Recipe
	if len(ids) > 0 {
		cursor, err := db.RecipeCollection.Find(r.Context(), bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())
		if err := cursor.All(r.Context(), &selected); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		selected = orderBySelection(ids, selected)
	}

	items, err := kitchen.Aggregate(selected)
	if err != nil {
		if errors.Is(err, kitchen.ErrNoRecipes) {
			utils.RespondWithError(w, http.StatusBadRequest, "Select at least one recipe")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"items": items})
}

// orderBySelection puts fetched recipes back into the order the client
// selected them. A $in query returns documents in collection order, but item
// attribution and tie order inside the aggregator follow the selection.
// Selecting the same recipe twice counts it twice.
func orderBySelection(ids []primitive.ObjectID, fetched []models.Recipe) []models.Recipe {
	byID := make(map[primitive.ObjectID]models.Recipe, len(fetched))
	for _, recipe := range fetched {
		byID[recipe.ID] = recipe
	}
	ordered := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := byID[id]; ok {
			ordered = append(ordered, recipe)
		}
	}
	return ordered
}

type saveRequest struct {
	Name  string                    `json:"name"`
	Items []models.ShoppingListItem `json:"items"`
}

// SaveList snapshots a finished list under a user-chosen name. Saving again
// under the same name overwrites; lists are never merged.
func SaveList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "List name is required")
		return
	}
	if len(req.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "List is empty")
		return
	}

	key := localstore.UserKey(localstore.KeyShoppingLists, userID)
	lists := map[string]models.SavedShoppingList{}
	if _, err := Store.Load(r.Context(), key, &lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	lists[req.Name] = models.SavedShoppingList{
		Name:      req.Name,
		Items:     req.Items,
		CreatedAt: time.Now().Unix(),
	}
	if err := Store.Save(r.Context(), key, lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "saved", "name": req.Name})
}

// GetLists returns every saved list of the caller.
func GetLists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	lists := map[string]models.SavedShoppingList{}
	if _, err := Store.Load(r.Context(), localstore.UserKey(localstore.KeyShoppingLists, userID), &lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lists)
}

// DeleteList removes one saved list by name.
func DeleteList(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	name := ps.ByName("name")

	key := localstore.UserKey(localstore.KeyShoppingLists, userID)
	lists := map[string]models.SavedShoppingList{}
	found, err := Store.Load(r.Context(), key, &lists)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "No saved lists")
		return
	}
	if _, ok := lists[name]; !ok {
		utils.RespondWithError(w, http.StatusNotFound, "List not found")
		return
	}

	delete(lists, name)
	if err := Store.Save(r.Context(), key, lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

type checkRequest struct {
	ItemName string `json:"itemName"`
	Checked  bool   `json:"checked"`
}

// CheckItem toggles the checked flag of one item in a saved list.
func CheckItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	name := ps.ByName("name")

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}

	key := localstore.UserKey(localstore.KeyShoppingLists, userID)
	lists := map[string]models.SavedShoppingList{}
	if _, err := Store.Load(r.Context(), key, &lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	list, ok := lists[name]
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "List not found")
		return
	}

	updated := false
	for i := range list.Items {
		if list.Items[i].Name == req.ItemName {
			list.Items[i].Checked = req.Checked
			updated = true
		}
	}
	if !updated {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	lists[name] = list
	if err := Store.Save(r.Context(), key, lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

type customItemRequest struct {
	Name string `json:"name"`
}

// AddCustomItem appends a user-typed entry to a saved list.
func AddCustomItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	name := ps.ByName("name")

	var req customItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Item name is required")
		return
	}

	key := localstore.UserKey(localstore.KeyShoppingLists, userID)
	lists := map[string]models.SavedShoppingList{}
	if _, err := Store.Load(r.Context(), key, &lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	list, ok := lists[name]
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "List not found")
		return
	}

	list.Items = append(list.Items, kitchen.CustomItem(req.Name))
	lists[name] = list
	if err := Store.Save(r.Context(), key, lists); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "added"})
}
