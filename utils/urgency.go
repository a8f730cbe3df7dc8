package utils

import (
	"time"

	"p9e.in/abpts/models"
)

// UrgencyTier classifies how close an opportunity's deadline is
type UrgencyTier string

const (
	UrgencyNormal  UrgencyTier = "Normal"
	UrgencyWarning UrgencyTier = "Warning"
	UrgencyUrgent  UrgencyTier = "Urgent"
)

// IsResolved reports whether the opportunity has left the active
// pipeline. Deadline urgency no longer applies past these stages.
func IsResolved(status models.OpportunityStatus) bool {
	switch status {
	case models.StatusSubmitted, models.StatusWon, models.StatusLost:
		return true
	}
	return false
}

// ClassifyDeadline maps a deadline and status to an urgency tier, used
// for row-level tinting on the tracker board. Resolved opportunities are
// always Normal. Both thresholds are inclusive, and a deadline already in
// the past still classifies Urgent: overdue rows must keep the strongest
// tint, not fade back to normal.
//
// now is injected so callers and tests control the clock.
func ClassifyDeadline(deadline time.Time, status models.OpportunityStatus, now time.Time) UrgencyTier {
	if IsResolved(status) {
		return UrgencyNormal
	}
	hoursRemaining := deadline.Sub(now).Hours()
	if hoursRemaining <= 24 {
		return UrgencyUrgent
	}
	if hoursRemaining <= 48 {
		return UrgencyWarning
	}
	return UrgencyNormal
}

// IsActionableUrgent reports whether an opportunity belongs in
// "requires attention" counts: still in the active pipeline, with a
// deadline inside the next 48 hours that has not already passed. This is
// deliberately not the same predicate as ClassifyDeadline, which keeps
// flagging overdue rows.
func IsActionableUrgent(deadline time.Time, status models.OpportunityStatus, now time.Time) bool {
	if IsResolved(status) {
		return false
	}
	hoursRemaining := deadline.Sub(now).Hours()
	return hoursRemaining > 0 && hoursRemaining <= 48
}
