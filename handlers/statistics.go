package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"p9e.in/abpts/config"
	"p9e.in/abpts/models"
	"p9e.in/abpts/utils"
)

// GetStatistics recomputes the portfolio summary from the live
// opportunity collection on every call. The summary is never cached or
// persisted; all the aggregation rules live in utils.Summarize.
func GetStatistics(w http.ResponseWriter, r *http.Request) {
	var opportunities []models.Opportunity
	if err := config.DB.Order("created_at").Find(&opportunities).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := utils.Summarize(opportunities, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
