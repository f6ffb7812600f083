package recipes

import (
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type favoritesDoc struct {
	UserID    string   `bson:"userid"`
	RecipeIDs []string `bson:"recipeIds"`
}

// AddFavorite marks a recipe as a favorite of the caller. Idempotent.
func AddFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleFavorite(w, r, ps, true)
}

// RemoveFavorite unmarks a favorite. Idempotent.
func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleFavorite(w, r, ps, false)
}

func toggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params, add bool) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	update := bson.M{"$pull": bson.M{"recipeIds": id.Hex()}}
	if add {
		if err := db.RecipeCollection.FindOne(r.Context(), bson.M{"_id": id}).Err(); err != nil {
			utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
			return
		}
		update = bson.M{"$addToSet": bson.M{"recipeIds": id.Hex()}}
	}

	_, err = db.FavoritesCollection.UpdateOne(
		r.Context(),
		bson.M{"userid": userID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"favorited": add})
}

// GetFavorites returns the caller's favorite recipes, newest first.
func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var doc favoritesDoc
	err := db.FavoritesCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&doc)
	if err != nil || len(doc.RecipeIDs) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.Recipe{})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(doc.RecipeIDs))
	for _, hex := range doc.RecipeIDs {
		if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
			ids = append(ids, oid)
		}
	}

	cursor, err := db.RecipeCollection.Find(r.Context(), bson.M{"_id": bson.M{"$in": ids}}, db.OptionsFindLatest(100))
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
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}
