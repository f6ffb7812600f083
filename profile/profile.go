package profile

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"forkful/db"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProfile returns the caller's own account.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var user models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetUserProfile returns a public view of any user by username, with their
// published recipes.
func GetUserProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	username := ps.ByName("username")

	var user models.User
	if err := db.UserCollection.FindOne(r.Context(), bson.M{"username": username}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	cursor, err := db.RecipeCollection.Find(r.Context(), bson.M{
		"userId": user.UserID,
		"status": models.StatusPublished,
	}, db.OptionsFindLatest(50))
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

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user, "recipes": recipes})
}

// EditProfile updates bio and username of the caller.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}

	updates := bson.M{"bio": body.Bio}
	if username := strings.TrimSpace(body.Username); username != "" {
		count, err := db.UserCollection.CountDocuments(r.Context(), bson.M{
			"username": username,
			"userid":   bson.M{"$ne": userID},
		})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if count > 0 {
			utils.RespondWithError(w, http.StatusConflict, "Username already taken")
			return
		}
		updates["username"] = username
	}

	_, err := db.UserCollection.UpdateOne(r.Context(), bson.M{"userid": userID}, bson.M{"$set": updates})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// EditProfilePic stores a new avatar image.
func EditProfilePic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing avatar file")
		return
	}
	defer file.Close()

	savedName, err := utils.SaveFile(file, header, "./static/userpic")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving file")
		return
	}

	_, err = db.UserCollection.UpdateOne(r.Context(), bson.M{"userid": userID},
		bson.M{"$set": bson.M{"avatarUrl": savedName}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"avatarUrl": savedName})
}

// DeleteProfile removes the caller's account. Their recipes are archived,
// not destroyed.
func DeleteProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	if _, err := db.UserCollection.DeleteOne(r.Context(), bson.M{"userid": userID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	db.RecipeCollection.UpdateMany(r.Context(), bson.M{"userId": userID},
		bson.M{"$set": bson.M{"status": models.StatusArchived, "updatedAt": time.Now().Unix()}})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}
