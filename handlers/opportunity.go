package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/abpts/config"
	"p9e.in/abpts/models"
)

func GetAllOpportunities(w http.ResponseWriter, r *http.Request) {
	var opportunities []models.Opportunity
	if err := config.DB.Order("created_at").Find(&opportunities).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opportunities)
}

func CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var item models.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := item.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func GetOpportunity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.Opportunity
	result := config.DB.Where("id = ?", id).First(&item)
	if result.Error != nil {
		http.Error(w, "opportunity not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateOpportunity is a full replace: the client sends every field, the
// server keeps only the id. Status changes are accepted as-is; there is
// no transition table restricting which stage can follow which.
func UpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var existing models.Opportunity
	result := config.DB.Where("id = ?", id).First(&existing)
	if result.Error != nil {
		http.Error(w, "opportunity not found", http.StatusNotFound)
		return
	}

	var item models.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := item.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// DeleteOpportunity removes the opportunity only. Compliance items,
// documents and activities that reference it are left in place; readers
// of those collections skip orphans.
func DeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.Opportunity{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "opportunity not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Opportunity deleted successfully"})
}
