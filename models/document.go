package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentCategory groups uploaded artifacts by their role in the bid
type DocumentCategory string

const (
	CategoryProposal   DocumentCategory = "Proposal"
	CategoryAnnexures  DocumentCategory = "Annexures"
	CategoryFinancials DocumentCategory = "Financials"
	CategoryCompliance DocumentCategory = "Compliance"
	CategorySupporting DocumentCategory = "Supporting"
)

// Document references one uploaded artifact for an opportunity.
// Version is assigned once at creation from the count of live documents
// sharing the same name within the opportunity, and is never recomputed
// when siblings are deleted. FileURL is set when an attachment was
// uploaded through the files endpoint; metadata-only documents leave it
// empty.
type Document struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	OpportunityID uuid.UUID        `gorm:"type:uuid;not null;index" json:"opportunity_id"`
	DocumentName  string           `gorm:"size:255;not null" json:"document_name"`
	Category      DocumentCategory `gorm:"type:varchar(20);default:'Proposal'" json:"category"`
	UploadedBy    string           `gorm:"size:255" json:"uploaded_by"`
	Version       string           `gorm:"size:10" json:"version"`
	FileURL       string           `gorm:"size:500" json:"file_url"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
