package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/abpts/config"
	"p9e.in/abpts/models"
	"p9e.in/abpts/utils"
)

// CreateDocument stores a document reference and assigns its version
// label server-side: the label is derived from the documents that
// currently share the same name within the opportunity, so clients never
// pick their own version. Each upload is also recorded in the
// opportunity's activity log.
func CreateDocument(w http.ResponseWriter, r *http.Request) {
	var item models.Document
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.OpportunityID == uuid.Nil {
		http.Error(w, "opportunity_id is required", http.StatusBadRequest)
		return
	}
	if item.DocumentName == "" {
		http.Error(w, "document_name is required", http.StatusBadRequest)
		return
	}

	var siblings []models.Document
	if err := config.DB.
		Where("opportunity_id = ? AND document_name = ?", item.OpportunityID, item.DocumentName).
		Find(&siblings).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	item.Version = utils.NextVersion(siblings)

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	activity := models.Activity{
		OpportunityID: item.OpportunityID,
		ActivityType:  "Document Upload",
		Description:   fmt.Sprintf("%s (%s) uploaded to %s", item.DocumentName, item.Version, item.Category),
		User:          item.UploadedBy,
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		// The document is already stored; a failed audit entry should not
		// fail the upload.
		log.Printf("document upload: failed to record activity: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func GetDocuments(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	opportunityID := params["opportunity_id"]

	var documents []models.Document
	if err := config.DB.Where("opportunity_id = ?", opportunityID).Order("created_at").Find(&documents).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(documents)
}

// DeleteDocument removes a single document row. Version labels of the
// surviving siblings are left untouched, so the next upload under the
// same name counts only what still exists.
func DeleteDocument(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		http.Error(w, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Document deleted successfully"})
}
