package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"forkful/db"
	"forkful/models"
	"forkful/mq"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviewBody struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// GetReviews lists reviews for an entity, newest first.
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entityType := ps.ByName("entityType")
	entityID := ps.ByName("entityId")

	cursor, err := db.ReviewsCollection.Find(
		r.Context(),
		bson.M{"entityType": entityType, "entityId": entityID},
		db.OptionsFindLatest(100),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var reviews []models.Review
	if err := cursor.All(r.Context(), &reviews); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(reviews) == 0 {
		reviews = []models.Review{}
	}
	utils.RespondWithJSON(w, http.StatusOK, reviews)
}

// GetReview returns one review by id.
func GetReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("reviewId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}
	var review models.Review
	if err := db.ReviewsCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}

// AddReview creates the caller's review of an entity; one per user per entity.
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	entityType := ps.ByName("entityType")
	entityID := ps.ByName("entityId")

	var body reviewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if body.Rating < 0 || body.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 0 and 5")
		return
	}

	existing := db.ReviewsCollection.FindOne(r.Context(), bson.M{
		"entityType": entityType, "entityId": entityID, "userId": userID,
	})
	if existing.Err() == nil {
		utils.RespondWithError(w, http.StatusConflict, "You already reviewed this")
		return
	}

	review := models.Review{
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Username:   utils.GetUsernameFromContext(r.Context()),
		Rating:     body.Rating,
		Comment:    body.Comment,
		CreatedAt:  time.Now().Unix(),
		UpdatedAt:  time.Now().Unix(),
	}
	result, err := db.ReviewsCollection.InsertOne(r.Context(), review)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}
	review.ID = result.InsertedID.(primitive.ObjectID)

	refreshEntityRating(r.Context(), entityType, entityID)
	mq.Emit("review-added", mq.Index{EntityType: entityType, Method: "POST", EntityId: entityID, ItemId: review.ID.Hex(), ItemType: "review"})
	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// EditReview updates the caller's own review.
func EditReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	id, err := primitive.ObjectIDFromHex(ps.ByName("reviewId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var body reviewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	if body.Rating < 0 || body.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 0 and 5")
		return
	}

	var review models.Review
	if err := db.ReviewsCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not own this review")
		return
	}

	_, err = db.ReviewsCollection.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": bson.M{
		"rating":    body.Rating,
		"comment":   body.Comment,
		"updatedAt": time.Now().Unix(),
	}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	refreshEntityRating(r.Context(), review.EntityType, review.EntityID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteReview removes the caller's own review.
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	id, err := primitive.ObjectIDFromHex(ps.ByName("reviewId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var review models.Review
	if err := db.ReviewsCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not own this review")
		return
	}

	if _, err := db.ReviewsCollection.DeleteOne(r.Context(), bson.M{"_id": id}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	refreshEntityRating(r.Context(), review.EntityType, review.EntityID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// refreshEntityRating recomputes a recipe's average rating from its reviews.
// Other entity types carry no denormalized rating.
func refreshEntityRating(ctx context.Context, entityType, entityID string) {
	if entityType != "recipe" {
		return
	}
	recipeID, err := primitive.ObjectIDFromHex(entityID)
	if err != nil {
		return
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"entityType": "recipe", "entityId": entityID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := db.ReviewsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	var result []struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return
	}

	avg, count := 0.0, 0
	if len(result) > 0 {
		avg, count = result[0].Avg, result[0].Count
	}
	db.RecipeCollection.UpdateOne(ctx, bson.M{"_id": recipeID}, bson.M{"$set": bson.M{
		"rating":      avg,
		"ratingCount": count,
	}})
}
