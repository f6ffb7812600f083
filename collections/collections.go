package collections

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type collectionBody struct {
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

// GetCollections lists the caller's collections.
func GetCollections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	cursor, err := db.CollectionsCollection.Find(r.Context(), bson.M{"userId": userID}, db.OptionsFindLatest(100))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var collections []models.Collection
	if err := cursor.All(r.Context(), &collections); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(collections) == 0 {
		collections = []models.Collection{}
	}
	utils.RespondWithJSON(w, http.StatusOK, collections)
}

// GetCollection returns one collection; non-owners only see public ones.
func GetCollection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid collection ID")
		return
	}

	var collection models.Collection
	if err := db.CollectionsCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&collection); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Collection not found")
		return
	}

	if !collection.Public && collection.UserID != utils.GetUserIDFromRequest(r) {
		utils.RespondWithError(w, http.StatusForbidden, "This collection is private")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, collection)
}

// CreateCollection makes a new, empty collection. Names are unique per owner.
func CreateCollection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body collectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	if nameTaken(r.Context(), userID, body.Name, primitive.NilObjectID) {
		utils.RespondWithError(w, http.StatusConflict, "You already have a collection with this name")
		return
	}

	collection := models.Collection{
		UserID:    userID,
		Name:      body.Name,
		RecipeIDs: []string{},
		Public:    body.Public,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	result, err := db.CollectionsCollection.InsertOne(r.Context(), collection)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}
	collection.ID = result.InsertedID.(primitive.ObjectID)
	utils.RespondWithJSON(w, http.StatusCreated, collection)
}

// UpdateCollection renames a collection or toggles its visibility.
func UpdateCollection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	id, collection, ok := requireOwned(w, r, ps)
	if !ok {
		return
	}

	var body collectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		body.Name = collection.Name
	}
	if body.Name != collection.Name && nameTaken(r.Context(), userID, body.Name, id) {
		utils.RespondWithError(w, http.StatusConflict, "You already have a collection with this name")
		return
	}

	_, err := db.CollectionsCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":      body.Name,
		"public":    body.Public,
		"updatedAt": time.Now().Unix(),
	}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteCollection removes an owned collection. Recipes themselves are
// untouched; a collection only holds references.
func DeleteCollection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _, ok := requireOwned(w, r, ps)
	if !ok {
		return
	}
	if _, err := db.CollectionsCollection.DeleteOne(r.Context(), bson.M{"_id": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// AddRecipe inserts a recipe reference into an owned collection.
func AddRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _, ok := requireOwned(w, r, ps)
	if !ok {
		return
	}

	recipeID, err := primitive.ObjectIDFromHex(ps.ByName("recipeid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipe ID")
		return
	}
	if err := db.RecipeCollection.FindOne(r.Context(), bson.M{"_id": recipeID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	_, err = db.CollectionsCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"recipeIds": recipeID.Hex()},
		"$set":      bson.M{"updatedAt": time.Now().Unix()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "added"})
}

// RemoveRecipe drops a recipe reference from an owned collection.
func RemoveRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, _, ok := requireOwned(w, r, ps)
	if !ok {
		return
	}

	recipeID := ps.ByName("recipeid")
	_, err := db.CollectionsCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{
		"$pull": bson.M{"recipeIds": recipeID},
		"$set":  bson.M{"updatedAt": time.Now().Unix()},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "removed"})
}

func requireOwned(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (primitive.ObjectID, *models.Collection, bool) {
	userID := utils.GetUserIDFromRequest(r)
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid collection ID")
		return primitive.NilObjectID, nil, false
	}

	var collection models.Collection
	if err := db.CollectionsCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&collection); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Collection not found")
		return primitive.NilObjectID, nil, false
	}
	if collection.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not own this collection")
		return primitive.NilObjectID, nil, false
	}
	return id, &collection, true
}

func nameTaken(ctx context.Context, userID, name string, excluding primitive.ObjectID) bool {
	query := bson.M{"userId": userID, "name": name}
	if excluding != primitive.NilObjectID {
		query["_id"] = bson.M{"$ne": excluding}
	}
	count, err := db.CollectionsCollection.CountDocuments(ctx, query)
	return err == nil && count > 0
}
