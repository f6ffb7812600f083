package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"forkful/db"
	"forkful/models"
	"forkful/rdx"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account and returns a bearer token.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	if creds.Username == "" || creds.Email == "" || len(creds.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Username, email and a password of 6+ characters are required")
		return
	}

	ctx := r.Context()
	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"email": creds.Email},
		{"username": creds.Username},
	}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check existing users")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Username or email already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().Unix(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := GenerateToken(user.UserID, user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	log.Printf("[auth] registered user %s", user.UserID)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"token": token, "user": user})
}

// Login verifies credentials and returns a bearer token.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{
		"email": strings.ToLower(strings.TrimSpace(creds.Email)),
	}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(user.UserID, user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token, "user": user})
}

// LogoutUser blacklists the presented token for the rest of its lifetime.
func LogoutUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := BearerToken(r)
	if token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing token")
		return
	}
	if err := BlacklistToken(r.Context(), token); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "logged out"})
}

// RefreshToken issues a fresh token for an authenticated caller and retires
// the one it was called with.
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	username := utils.GetUsernameFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := GenerateToken(userID, username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	if old := BearerToken(r); old != "" {
		if err := BlacklistToken(r.Context(), old); err != nil {
			log.Printf("[auth] failed to retire old token: %v", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token})
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func BlacklistToken(ctx context.Context, token string) error {
	return rdx.Set(ctx, "blacklist:"+token, "1", tokenTTL)
}

func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if rdx.Conn == nil {
		return false
	}
	exists, err := rdx.Exists(ctx, "blacklist:"+token)
	if err != nil {
		return false
	}
	return exists
}
