package recipes

import (
	"encoding/json"
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type generateRequest struct {
	Ingredients []string `json:"ingredients"`
}

// GenerateFromIngredients suggests stored recipes whose ingredient lists
// mention any of the submitted ingredients. Despite the route name this is
// substring matching against the collection, not a generative model.
func GenerateFromIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}

	var terms []string
	for _, ing := range req.Ingredients {
		if ing != "" {
			terms = append(terms, ing)
		}
	}
	if len(terms) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "At least one ingredient is required")
		return
	}

	var clauses []bson.M
	for _, term := range terms {
		clauses = append(clauses, bson.M{"ingredients": bson.M{"$regex": term, "$options": "i"}})
	}
	query := bson.M{
		"$or":    clauses,
		"status": bson.M{"$ne": models.StatusArchived},
	}

	cursor, err := db.RecipeCollection.Find(r.Context(), query, options.Find().SetLimit(25))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var recipes []models.Recipe
	if err := cursor.All(r.Context(), &recipes); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(recipes) == 0 {
		recipes = []models.Recipe{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"recipes": recipes})
}
