package home

import (
	"net/http"
	"strings"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetHomeContent handles the dashboard endpoints under /home/:apiRoute
func GetHomeContent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apiRoute := strings.ToLower(ps.ByName("apiRoute"))

	var (
		data interface{}
		err  error
	)

	switch apiRoute {
	case "featured":
		data, err = getFeaturedRecipes(r)
	case "latest":
		data, err = getLatestRecipes(r)
	case "categories":
		data, err = getRecipeCategories()
	case "seasonal-tips":
		data, err = getSeasonalTips()
	default:
		utils.RespondWithError(w, http.StatusNotFound, "Invalid API route")
		return
	}

	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch data: "+err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, data)
}

// getFeaturedRecipes returns the highest rated published recipes
func getFeaturedRecipes(r *http.Request) ([]models.Recipe, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "views", Value: -1}}).
		SetLimit(6)

	cursor, err := db.RecipeCollection.Find(r.Context(), bson.M{"status": models.StatusPublished}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(r.Context())

	var recipes []models.Recipe
	if err := cursor.All(r.Context(), &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// getLatestRecipes returns the newest published recipes
func getLatestRecipes(r *http.Request) ([]models.Recipe, error) {
	cursor, err := db.RecipeCollection.Find(r.Context(),
		bson.M{"status": models.StatusPublished}, db.OptionsFindLatest(10))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(r.Context())

	var recipes []models.Recipe
	if err := cursor.All(r.Context(), &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// getRecipeCategories returns the browsable category list
func getRecipeCategories() ([]string, error) {
	return []string{
		"breakfast",
		"lunch",
		"dinner",
		"dessert",
		"snack",
		"drink",
	}, nil
}

// getSeasonalTips returns a list of rotating kitchen tips
func getSeasonalTips() ([]string, error) {
	return []string{
		"🍅 Tomatoes are at their best right now — try them raw",
		"🥬 Wilting greens revive in ten minutes of ice water",
		"🍲 Double the stew, freeze half for a busy week",
	}, nil
}
