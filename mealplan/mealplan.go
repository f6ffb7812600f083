// Package mealplan stores one weekly plan per user in the localstore.
// Replacing the plan replaces it whole; there is no merging with an earlier
// saved week.
package mealplan

import (
	"encoding/json"
	"net/http"
	"time"

	"forkful/localstore"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

// Store is injected at startup; redis in production, memory in tests.
var Store localstore.Store = localstore.NewMemoryStore()

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// GetPlan returns the caller's weekly plan, empty if never saved.
func GetPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var plan models.MealPlan
	found, err := Store.Load(r.Context(), localstore.UserKey(localstore.KeyMealPlan, userID), &plan)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		plan = models.MealPlan{Days: map[string]map[string]string{}}
	}
	utils.RespondWithJSON(w, http.StatusOK, plan)
}

// PutPlan replaces the caller's weekly plan.
func PutPlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	var plan models.MealPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid body")
		return
	}
	for day := range plan.Days {
		if !validDays[day] {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown day: "+day)
			return
		}
	}
	plan.UpdatedAt = time.Now().Unix()

	if err := Store.Save(r.Context(), localstore.UserKey(localstore.KeyMealPlan, userID), plan); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, plan)
}

// DeletePlan clears the caller's weekly plan.
func DeletePlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if err := Store.Delete(r.Context(), localstore.UserKey(localstore.KeyMealPlan, userID)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "cleared"})
}
