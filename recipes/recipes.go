package recipes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"forkful/db"
	"forkful/kitchen"
	"forkful/models"
	"forkful/mq"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const uploadFolder = "./static/uploads"

// fetchLimit caps how many documents a list query pulls before the in-memory
// criteria pass runs.
const fetchLimit = 500

// GetRecipes lists published recipes. Text search and category narrowing run
// in Mongo; tag/dietary/difficulty/rating/time criteria run through the
// kitchen filter so the REST surface and the engine agree on semantics.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	query := listQuery(q.Get("search"), q.Get("category"))

	sort := bson.D{{Key: "createdAt", Value: -1}}
	switch q.Get("sort") {
	case "oldest":
		sort = bson.D{{Key: "createdAt", Value: 1}}
	case "popular":
		sort = bson.D{{Key: "views", Value: -1}}
	case "rating":
		sort = bson.D{{Key: "rating", Value: -1}}
	}

	opts := options.Find().SetSort(sort).SetLimit(fetchLimit)
	cursor, err := db.RecipeCollection.Find(ctx, query, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err = cursor.All(ctx, &recipes); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	recipes = kitchen.Filter(recipes, criteriaFromQuery(r))

	// Pagination after filtering so pages stay dense.
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 || offset > len(recipes) {
		offset = 0
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	end := offset + limit
	if end > len(recipes) {
		end = len(recipes)
	}
	recipes = recipes[offset:end]

	if len(recipes) == 0 {
		recipes = []models.Recipe{}
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// listQuery builds the list pre-filter. Search matches title, description,
// ingredient lines, and tags, case-insensitively.
func listQuery(search, category string) bson.M {
	query := bson.M{"status": bson.M{"$ne": models.StatusArchived}}
	if search != "" {
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"description": bson.M{"$regex": search, "$options": "i"}},
			{"ingredients": bson.M{"$regex": search, "$options": "i"}},
			{"tags": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if category != "" {
		query["category"] = category
	}
	return query
}

func criteriaFromQuery(r *http.Request) kitchen.Criteria {
	q := r.URL.Query()
	return kitchen.Criteria{
		Tags:       utils.SplitCSV(q.Get("tags")),
		Dietary:    utils.SplitCSV(q.Get("dietary")),
		Difficulty: q.Get("difficulty"),
		MinRating:  utils.ParseFloat(q.Get("minRating")),
		TimeBucket: q.Get("time"),
	}
}

// GetRecipe returns one recipe and bumps its view counter.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}

	var recipe models.Recipe
	err = db.RecipeCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&recipe)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// CreateRecipe accepts a multipart form with recipe fields and image files.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	recipe := recipeFromForm(r)
	recipe.UserID = userID
	recipe.CreatedAt = time.Now().Unix()
	recipe.UpdatedAt = recipe.CreatedAt
	recipe.Views = 0

	if recipe.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if len(recipe.Ingredients) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "At least one ingredient is required")
		return
	}

	for _, fileHeader := range r.MultipartForm.File["imageUrls"] {
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error reading file")
			return
		}
		savedName, err := utils.SaveFile(file, fileHeader, uploadFolder)
		file.Close()
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error saving file")
			return
		}
		recipe.ImageURLs = append(recipe.ImageURLs, savedName)
	}

	result, err := db.RecipeCollection.InsertOne(r.Context(), recipe)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}
	recipe.ID = result.InsertedID.(primitive.ObjectID)

	mq.Emit("recipe-created", mq.Index{EntityType: "recipe", Method: "POST", EntityId: recipe.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusCreated, recipe)
}

func recipeFromForm(r *http.Request) models.Recipe {
	status := r.FormValue("status")
	if status == "" {
		status = models.StatusPublished
	}
	return models.Recipe{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Tags:        utils.SplitCSV(r.FormValue("tags")),
		Dietary:     dietaryFromCSV(r.FormValue("dietary")),
		Difficulty:  r.FormValue("difficulty"),
		CookingTime: utils.ParseInt(r.FormValue("cookingTime")),
		Servings:    utils.ParseInt(r.FormValue("servings")),
		Ingredients: utils.SplitLines(r.FormValue("ingredients")),
		Steps:       utils.SplitLines(r.FormValue("steps")),
		Status:      status,
	}
}

func dietaryFromCSV(s string) map[string]bool {
	flags := utils.SplitCSV(s)
	if len(flags) == 0 {
		return nil
	}
	out := make(map[string]bool, len(flags))
	for _, f := range flags {
		out[f] = true
	}
	return out
}

// UpdateRecipe replaces the mutable fields of an owned recipe.
func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}
	userID := utils.GetUserIDFromRequest(r)

	existing, ok := requireOwnership(r.Context(), w, id, userID)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	incoming := recipeFromForm(r)
	updates := bson.M{
		"title":       incoming.Title,
		"description": incoming.Description,
		"category":    incoming.Category,
		"tags":        incoming.Tags,
		"dietary":     incoming.Dietary,
		"difficulty":  incoming.Difficulty,
		"cookingTime": incoming.CookingTime,
		"servings":    incoming.Servings,
		"ingredients": incoming.Ingredients,
		"steps":       incoming.Steps,
		"status":      incoming.Status,
		"updatedAt":   time.Now().Unix(),
	}

	var imagePaths []string
	for _, fileHeader := range r.MultipartForm.File["imageUrls"] {
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error reading file")
			return
		}
		savedName, err := utils.SaveFile(file, fileHeader, uploadFolder)
		file.Close()
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error saving file")
			return
		}
		imagePaths = append(imagePaths, savedName)
	}
	if len(imagePaths) > 0 {
		updates["imageUrls"] = imagePaths
	}

	_, err = db.RecipeCollection.UpdateOne(r.Context(), bson.M{"_id": existing.ID}, bson.M{"$set": updates})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mq.Emit("recipe-updated", mq.Index{EntityType: "recipe", Method: "PUT", EntityId: id.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteRecipe removes an owned recipe outright.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}
	userID := utils.GetUserIDFromRequest(r)

	if _, ok := requireOwnership(r.Context(), w, id, userID); !ok {
		return
	}

	if _, err := db.RecipeCollection.DeleteOne(r.Context(), bson.M{"_id": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mq.Emit("recipe-deleted", mq.Index{EntityType: "recipe", Method: "DELETE", EntityId: id.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// requireOwnership loads the recipe and rejects callers who do not own it.
func requireOwnership(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID, userID string) (*models.Recipe, bool) {
	var recipe models.Recipe
	if err := db.RecipeCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return nil, false
	}
	if recipe.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not own this recipe")
		return nil, false
	}
	return &recipe, true
}

// GetRecipeTags returns the distinct tag set across all recipes.
func GetRecipeTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{
			"_id":  nil,
			"tags": bson.M{"$addToSet": "$tags"},
		}}},
	}

	cursor, err := db.RecipeCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	var result []struct {
		Tags []string `bson:"tags"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(result) > 0 {
		utils.RespondWithJSON(w, http.StatusOK, result[0].Tags)
	} else {
		utils.RespondWithJSON(w, http.StatusOK, []string{})
	}
}
