package suggestions

import (
	"net/http"
	"strconv"

	"forkful/db"
	"forkful/kitchen"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SuggestFollowers pages through users the caller does not yet follow.
func SuggestFollowers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	var followData models.UserFollow
	err = db.FollowingsCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&followData)
	if err != nil && err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch follow data")
		return
	}

	excluded := append(followData.Follows, userID)

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"userid": 1, "username": 1, "bio": 1})

	cursor, err := db.UserCollection.Find(r.Context(), bson.M{"userid": bson.M{"$nin": excluded}}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}
	defer cursor.Close(r.Context())

	var suggested []models.UserSuggest
	for cursor.Next(r.Context()) {
		var user models.UserSuggest
		if err := cursor.Decode(&user); err == nil {
			user.IsFollowing = false
			suggested = append(suggested, user)
		}
	}
	if len(suggested) == 0 {
		suggested = []models.UserSuggest{}
	}
	utils.RespondWithJSON(w, http.StatusOK, suggested)
}

// SuggestRecipes filters the published collection by the caller's query
// parameters. This is a restriction, not a ranking: result order follows the
// stored sort.
func SuggestRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	cursor, err := db.RecipeCollection.Find(r.Context(),
		bson.M{"status": models.StatusPublished}, db.OptionsFindLatest(200))
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

	matched := kitchen.Filter(recipes, kitchen.Criteria{
		Query:      q.Get("q"),
		Tags:       utils.SplitCSV(q.Get("tags")),
		Category:   q.Get("category"),
		Dietary:    utils.SplitCSV(q.Get("dietary")),
		Difficulty: q.Get("difficulty"),
		MinRating:  utils.ParseFloat(q.Get("minRating")),
		TimeBucket: q.Get("time"),
	})

	if len(matched) > 20 {
		matched = matched[:20]
	}
	if len(matched) == 0 {
		matched = []models.Recipe{}
	}
	utils.RespondWithJSON(w, http.StatusOK, matched)
}
