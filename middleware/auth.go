package middleware

import (
	"context"
	"net/http"

	"forkful/auth"
	"forkful/globals"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

// Authenticate rejects requests without a valid bearer token and puts the
// caller's identity on the request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := auth.BearerToken(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}
		claims, err := auth.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if auth.IsTokenBlacklisted(r.Context(), token) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Token has been revoked")
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), claims)), ps)
	}
}

// OptionalAuth attaches identity when a valid token is present but lets
// anonymous requests through.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if token := auth.BearerToken(r); token != "" {
			if claims, err := auth.ValidateToken(token); err == nil && !auth.IsTokenBlacklisted(r.Context(), token) {
				r = r.WithContext(withIdentity(r.Context(), claims))
			}
		}
		next(w, r, ps)
	}
}

func withIdentity(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, globals.UserIDKey, claims.UserID)
	return context.WithValue(ctx, globals.UsernameKey, claims.Username)
}
