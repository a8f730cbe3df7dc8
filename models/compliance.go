package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplianceStatus defines the satisfaction state of one RFP requirement
type ComplianceStatus string

const (
	ComplianceStatusPending      ComplianceStatus = "Pending"
	ComplianceStatusCompliant    ComplianceStatus = "Compliant"
	ComplianceStatusNonCompliant ComplianceStatus = "Non-Compliant"
)

// ComplianceItem tracks one RFP requirement against an opportunity.
// OpportunityID is a weak reference: deleting the parent opportunity does
// not cascade here, so aggregation code must tolerate orphaned items.
type ComplianceItem struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	OpportunityID uuid.UUID        `gorm:"type:uuid;not null;index" json:"opportunity_id"`
	Requirement   string           `gorm:"type:text;not null" json:"requirement"`
	Status        ComplianceStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	Notes         string           `gorm:"type:text" json:"notes"`
	AssignedTo    string           `gorm:"size:255" json:"assigned_to"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (ci *ComplianceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return
}
