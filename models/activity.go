package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one append-only audit-log entry for an opportunity.
// Entries are never updated or deleted; there are no handlers for either.
type Activity struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OpportunityID uuid.UUID `gorm:"type:uuid;not null;index" json:"opportunity_id"`
	ActivityType  string    `gorm:"size:100;not null" json:"activity_type"`
	Description   string    `gorm:"type:text" json:"description"`
	User          string    `gorm:"size:255;column:user_name" json:"user"`
	CreatedAt     time.Time `json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
