package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/abpts/config"
	"p9e.in/abpts/models"
)

// CreateActivity appends one audit-log entry. There are deliberately no
// update or delete counterparts; the log is immutable once written.
func CreateActivity(w http.ResponseWriter, r *http.Request) {
	var item models.Activity
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.OpportunityID == uuid.Nil {
		http.Error(w, "opportunity_id is required", http.StatusBadRequest)
		return
	}
	if item.ActivityType == "" {
		http.Error(w, "activity_type is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func GetActivities(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	opportunityID := params["opportunity_id"]

	var activities []models.Activity
	if err := config.DB.Where("opportunity_id = ?", opportunityID).
		Order("created_at desc").Find(&activities).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}
