package recipes

import (
	"encoding/json"
	"net/http"

	"forkful/db"
	"forkful/kitchen"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type scaleRequest struct {
	TargetServings int                `json:"targetServings"`
	Prices         map[string]float64 `json:"prices"`
}

type scaleResponse struct {
	OriginalServings int                        `json:"originalServings"`
	TargetServings   int                        `json:"targetServings"`
	ScaleFactor      float64                    `json:"scaleFactor"`
	Ingredients      []kitchen.ScaledIngredient `json:"ingredients"`
	EstimatedCost    float64                    `json:"estimatedCost"`
}

// ScaleRecipe runs the scaling engine over a stored recipe for a requested
// serving count. The result is derived view state; nothing is persisted.
func ScaleRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	var req scaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if req.TargetServings <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "targetServings must be positive")
		return
	}

	var recipe models.Recipe
	if err := db.RecipeCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&recipe); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	scaled := kitchen.Scale(recipe.Servings, req.TargetServings, recipe.Ingredients)

	utils.RespondWithJSON(w, http.StatusOK, scaleResponse{
		OriginalServings: recipe.Servings,
		TargetServings:   req.TargetServings,
		ScaleFactor:      kitchen.ScaleFactor(recipe.Servings, req.TargetServings),
		Ingredients:      scaled,
		EstimatedCost:    kitchen.EstimateCost(scaled, req.Prices),
	})
}
