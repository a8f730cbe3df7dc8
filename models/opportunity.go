package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OpportunityStatus defines the lifecycle stage of a bid pursuit.
// Transitions are free-form: the UI moves opportunities between any two
// stages and no transition table is enforced here.
type OpportunityStatus string

const (
	StatusDrafting  OpportunityStatus = "Drafting"
	StatusReview    OpportunityStatus = "Review"
	StatusApproved  OpportunityStatus = "Approved"
	StatusSubmitted OpportunityStatus = "Submitted"
	StatusWon       OpportunityStatus = "Won"
	StatusLost      OpportunityStatus = "Lost"
)

// PriorityLevel defines how urgently an opportunity should be staffed
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

// SubmissionFormat defines how the proposal is delivered to the client
type SubmissionFormat string

const (
	FormatPortal SubmissionFormat = "Portal"
	FormatEmail  SubmissionFormat = "Email"
	FormatHybrid SubmissionFormat = "Hybrid"
)

// RiskFlags stores an ordered list of free-text risk tags as a JSONB
// column; order is preserved as entered.
type RiskFlags = datatypes.JSONSlice[string]

// Opportunity represents one bid/RFP pursuit, the root aggregate of the
// domain. CompliancePercentage is the manually maintained figure shown on
// the tracker board; it is independent of the rate derived from the
// opportunity's ComplianceItems and the two are never synchronized.
type Opportunity struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Client               string            `gorm:"size:255;not null" json:"client"`
	ProjectType          string            `gorm:"size:255;not null" json:"project_type"`
	RFPReleaseDate       string            `gorm:"size:10;not null" json:"rfp_release_date"` // calendar date, YYYY-MM-DD
	SubmissionDeadline   JSONTime          `gorm:"type:timestamptz;not null" json:"submission_deadline"`
	ProposalOwner        string            `gorm:"size:255;not null" json:"proposal_owner"`
	Status               OpportunityStatus `gorm:"type:varchar(20);default:'Drafting'" json:"status"`
	CompliancePercentage int               `gorm:"default:0" json:"compliance_percentage"`
	PriorityLevel        PriorityLevel     `gorm:"type:varchar(10);default:'Medium'" json:"priority_level"`
	PortalLink           string            `gorm:"size:500" json:"portal_link"`
	RiskFlags            RiskFlags         `gorm:"type:jsonb;default:'[]'" json:"risk_flags"`
	SubmissionFormat     SubmissionFormat  `gorm:"type:varchar(10);default:'Portal'" json:"submission_format"`
	Budget               string            `gorm:"size:100" json:"budget"`
	Industry             string            `gorm:"size:100" json:"industry"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (o *Opportunity) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// Validate rejects malformed input before it reaches the database.
// The release date and the deadline are independent inputs; release
// after deadline is accepted (the system has never enforced ordering).
func (o *Opportunity) Validate() error {
	if o.Client == "" {
		return fmt.Errorf("opportunity: client is required")
	}
	if o.ProjectType == "" {
		return fmt.Errorf("opportunity: project_type is required")
	}
	if _, err := time.Parse("2006-01-02", o.RFPReleaseDate); err != nil {
		return fmt.Errorf("opportunity: rfp_release_date %q is not a valid date: %w", o.RFPReleaseDate, err)
	}
	if o.SubmissionDeadline.Time().IsZero() {
		return fmt.Errorf("opportunity: submission_deadline is required")
	}
	if o.CompliancePercentage < 0 || o.CompliancePercentage > 100 {
		return fmt.Errorf("opportunity: compliance_percentage %d out of range 0-100", o.CompliancePercentage)
	}
	return nil
}
