package profile

import (
	"net/http"

	"forkful/db"
	"forkful/models"
	"forkful/mq"
	"forkful/notify"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ToggleFollow makes the caller follow the target user.
func ToggleFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	targetID := ps.ByName("id")
	if targetID == "" || targetID == userID {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid target user")
		return
	}

	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": targetID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	upsert := options.Update().SetUpsert(true)
	_, err := db.FollowingsCollection.UpdateOne(r.Context(),
		bson.M{"userid": userID},
		bson.M{"$addToSet": bson.M{"follows": targetID}}, upsert)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_, err = db.FollowingsCollection.UpdateOne(r.Context(),
		bson.M{"userid": targetID},
		bson.M{"$addToSet": bson.M{"followers": userID}}, upsert)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	mq.Emit("user-followed", mq.Index{EntityType: "user", Method: "PUT", EntityId: targetID, ItemId: userID})
	notify.Push(targetID, notify.Event{Type: "follow", From: userID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"following": true})
}

// ToggleUnFollow removes the follow edge in both directions.
func ToggleUnFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	targetID := ps.ByName("id")

	_, err := db.FollowingsCollection.UpdateOne(r.Context(),
		bson.M{"userid": userID},
		bson.M{"$pull": bson.M{"follows": targetID}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	_, err = db.FollowingsCollection.UpdateOne(r.Context(),
		bson.M{"userid": targetID},
		bson.M{"$pull": bson.M{"followers": userID}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"following": false})
}

// DoesFollow reports whether the caller follows the target.
func DoesFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	targetID := ps.ByName("id")

	var follow models.UserFollow
	err := db.FollowingsCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&follow)
	following := false
	if err == nil {
		for _, id := range follow.Follows {
			if id == targetID {
				following = true
				break
			}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"following": following})
}

// GetFollowers lists the users following :id.
func GetFollowers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	listFollowEdge(w, r, ps.ByName("id"), "followers")
}

// GetFollowing lists the users :id follows.
func GetFollowing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	listFollowEdge(w, r, ps.ByName("id"), "follows")
}

func listFollowEdge(w http.ResponseWriter, r *http.Request, userID, field string) {
	var follow models.UserFollow
	err := db.FollowingsCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&follow)
	ids := []string{}
	if err == nil {
		if field == "followers" {
			ids = follow.Followers
		} else {
			ids = follow.Follows
		}
	}
	if len(ids) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.UserSuggest{})
		return
	}

	cursor, err := db.UserCollection.Find(r.Context(), bson.M{"userid": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"userid": 1, "username": 1, "bio": 1}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(r.Context())

	var users []models.UserSuggest
	if err := cursor.All(r.Context(), &users); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(users) == 0 {
		users = []models.UserSuggest{}
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}
