package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/abpts/config"
	"p9e.in/abpts/models"
	"p9e.in/abpts/utils"
)

func CreateComplianceItem(w http.ResponseWriter, r *http.Request) {
	var item models.ComplianceItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.OpportunityID == uuid.Nil {
		http.Error(w, "opportunity_id is required", http.StatusBadRequest)
		return
	}
	if item.Requirement == "" {
		http.Error(w, "requirement is required", http.StatusBadRequest)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func GetComplianceItems(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	opportunityID := params["opportunity_id"]

	var items []models.ComplianceItem
	if err := config.DB.Where("opportunity_id = ?", opportunityID).Order("created_at").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func UpdateComplianceItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.ComplianceItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	// Full replace carries the same requirements as create. Without the
	// opportunity_id check a partial body would re-parent the item to the
	// zero UUID, manufacturing an orphan.
	if item.OpportunityID == uuid.Nil {
		http.Error(w, "opportunity_id is required", http.StatusBadRequest)
		return
	}
	if item.Requirement == "" {
		http.Error(w, "requirement is required", http.StatusBadRequest)
		return
	}

	var existing models.ComplianceItem
	result := config.DB.Where("id = ?", id).First(&existing)
	if result.Error != nil {
		http.Error(w, "compliance item not found", http.StatusNotFound)
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

func DeleteComplianceItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.ComplianceItem{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "compliance item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Compliance item deleted successfully"})
}

// GetComplianceOverview reports the derived compliance rate across the
// whole portfolio plus a per-opportunity breakdown. Items whose parent
// opportunity has been deleted are excluded from every figure; their
// count is logged because it indicates stale data worth cleaning up, but
// it never fails the request.
func GetComplianceOverview(w http.ResponseWriter, r *http.Request) {
	var opportunities []models.Opportunity
	if err := config.DB.Find(&opportunities).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var items []models.ComplianceItem
	if err := config.DB.Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	known := make(map[uuid.UUID]struct{}, len(opportunities))
	for _, opp := range opportunities {
		known[opp.ID] = struct{}{}
	}

	overall, orphans := utils.PortfolioComplianceRate(items, known)
	if orphans > 0 {
		log.Printf("compliance overview: skipped %d items referencing deleted opportunities", orphans)
	}

	perOpportunity := make(map[uuid.UUID][]models.ComplianceItem)
	for _, item := range items {
		if _, ok := known[item.OpportunityID]; ok {
			perOpportunity[item.OpportunityID] = append(perOpportunity[item.OpportunityID], item)
		}
	}

	type opportunityCompliance struct {
		OpportunityID uuid.UUID `json:"opportunity_id"`
		Client        string    `json:"client"`
		DerivedRate   int       `json:"derived_rate"`
		StoredRate    int       `json:"stored_rate"`
		ItemCount     int       `json:"item_count"`
	}

	breakdown := make([]opportunityCompliance, 0, len(opportunities))
	for _, opp := range opportunities {
		oppItems := perOpportunity[opp.ID]
		breakdown = append(breakdown, opportunityCompliance{
			OpportunityID: opp.ID,
			Client:        opp.Client,
			DerivedRate:   utils.ComplianceRate(oppItems),
			StoredRate:    opp.CompliancePercentage,
			ItemCount:     len(oppItems),
		})
	}

	response := map[string]interface{}{
		"overall_rate":  overall,
		"orphaned":      orphans,
		"opportunities": breakdown,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
