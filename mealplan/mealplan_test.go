package mealplan

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"forkful/globals"
	"forkful/localstore"
	"forkful/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRequest(method string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, "/api/v1/mealplan", &buf)
	ctx := context.WithValue(r.Context(), globals.UserIDKey, "user-1")
	return r.WithContext(ctx)
}

func TestGetPlanEmpty(t *testing.T) {
	Store = localstore.NewMemoryStore()

	w := httptest.NewRecorder()
	GetPlan(w, authedRequest("GET", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plan models.MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Empty(t, plan.Days)
}

func TestPutAndGetPlan(t *testing.T) {
	Store = localstore.NewMemoryStore()

	plan := models.MealPlan{Days: map[string]map[string]string{
		"monday": {"dinner": "recipe-abc"},
		"friday": {"lunch": "recipe-def", "dinner": "recipe-ghi"},
	}}
	w := httptest.NewRecorder()
	PutPlan(w, authedRequest("PUT", plan), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	GetPlan(w, authedRequest("GET", nil), nil)
	var got models.MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "recipe-abc", got.Days["monday"]["dinner"])
	assert.Equal(t, "recipe-ghi", got.Days["friday"]["dinner"])
	assert.NotZero(t, got.UpdatedAt)
}

func TestPutPlanRejectsUnknownDay(t *testing.T) {
	Store = localstore.NewMemoryStore()

	plan := models.MealPlan{Days: map[string]map[string]string{
		"someday": {"dinner": "recipe-abc"},
	}}
	w := httptest.NewRecorder()
	PutPlan(w, authedRequest("PUT", plan), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Replacing the plan replaces it whole: old assignments do not survive.
func TestPutPlanReplacesWholeWeek(t *testing.T) {
	Store = localstore.NewMemoryStore()

	first := models.MealPlan{Days: map[string]map[string]string{"monday": {"dinner": "a"}}}
	w := httptest.NewRecorder()
	PutPlan(w, authedRequest("PUT", first), nil)
	require.Equal(t, http.StatusOK, w.Code)

	second := models.MealPlan{Days: map[string]map[string]string{"tuesday": {"dinner": "b"}}}
	w = httptest.NewRecorder()
	PutPlan(w, authedRequest("PUT", second), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	GetPlan(w, authedRequest("GET", nil), nil)
	var got models.MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotContains(t, got.Days, "monday")
	assert.Equal(t, "b", got.Days["tuesday"]["dinner"])
}

func TestDeletePlan(t *testing.T) {
	Store = localstore.NewMemoryStore()

	plan := models.MealPlan{Days: map[string]map[string]string{"monday": {"dinner": "a"}}}
	w := httptest.NewRecorder()
	PutPlan(w, authedRequest("PUT", plan), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	DeletePlan(w, authedRequest("DELETE", nil), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	GetPlan(w, authedRequest("GET", nil), nil)
	var got models.MealPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got.Days)
}
