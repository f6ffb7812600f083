package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"forkful/auth"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityEcho() (httprouter.Handle, *string) {
	var seen string
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seen = utils.GetUserIDFromRequest(r)
		w.WriteHeader(http.StatusOK)
	}, &seen
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler, _ := identityEcho()
	w := httptest.NewRecorder()
	Authenticate(handler)(w, httptest.NewRequest("GET", "/", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	handler, _ := identityEcho()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer bogus")

	w := httptest.NewRecorder()
	Authenticate(handler)(w, r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatePassesIdentity(t *testing.T) {
	token, err := auth.GenerateToken("user-42", "bob")
	require.NoError(t, err)

	handler, seen := identityEcho()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	Authenticate(handler)(w, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", *seen)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	handler, seen := identityEcho()
	w := httptest.NewRecorder()
	OptionalAuth(handler)(w, httptest.NewRequest("GET", "/", nil), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", *seen)
}

func TestOptionalAuthAttachesIdentityWhenPresent(t *testing.T) {
	token, err := auth.GenerateToken("user-7", "carol")
	require.NoError(t, err)

	handler, seen := identityEcho()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	OptionalAuth(handler)(w, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", *seen)
}
