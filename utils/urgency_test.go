package utils

import (
	"testing"
	"time"

	"p9e.in/abpts/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestClassifyDeadline(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Time
		status   models.OpportunityStatus
		expected UrgencyTier
	}{
		// Resolved statuses are always Normal whatever the deadline
		{"submitted with past deadline", testNow.Add(-100 * time.Hour), models.StatusSubmitted, UrgencyNormal},
		{"won with imminent deadline", testNow.Add(1 * time.Hour), models.StatusWon, UrgencyNormal},
		{"lost with far future deadline", testNow.Add(1000 * time.Hour), models.StatusLost, UrgencyNormal},

		// Urgent band: <= 24h, including overdue
		{"deadline in 1 hour", testNow.Add(1 * time.Hour), models.StatusDrafting, UrgencyUrgent},
		{"deadline exactly 24h", testNow.Add(24 * time.Hour), models.StatusDrafting, UrgencyUrgent},
		{"deadline already passed", testNow.Add(-10 * time.Hour), models.StatusReview, UrgencyUrgent},
		{"deadline long overdue", testNow.Add(-500 * time.Hour), models.StatusApproved, UrgencyUrgent},
		{"deadline right now", testNow, models.StatusDrafting, UrgencyUrgent},

		// Warning band: 24h < remaining <= 48h
		{"deadline in 25 hours", testNow.Add(25 * time.Hour), models.StatusDrafting, UrgencyWarning},
		{"deadline exactly 48h", testNow.Add(48 * time.Hour), models.StatusReview, UrgencyWarning},

		// Normal band: > 48h
		{"deadline just over 48h", testNow.Add(48*time.Hour + time.Minute), models.StatusDrafting, UrgencyNormal},
		{"deadline in a week", testNow.Add(7 * 24 * time.Hour), models.StatusApproved, UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyDeadline(tt.deadline, tt.status, testNow)
			if result != tt.expected {
				t.Errorf("ClassifyDeadline(%v, %q) = %v, expected %v",
					tt.deadline, tt.status, result, tt.expected)
			}
		})
	}
}

func TestIsActionableUrgent(t *testing.T) {
	tests := []struct {
		name     string
		deadline time.Time
		status   models.OpportunityStatus
		expected bool
	}{
		{"active within 48h", testNow.Add(10 * time.Hour), models.StatusReview, true},
		{"active exactly 48h", testNow.Add(48 * time.Hour), models.StatusDrafting, true},
		{"active just over 48h", testNow.Add(49 * time.Hour), models.StatusDrafting, false},

		// Unlike ClassifyDeadline, passed deadlines are excluded here
		{"active but already passed", testNow.Add(-1 * time.Hour), models.StatusDrafting, false},
		{"active deadline right now", testNow, models.StatusDrafting, false},

		{"submitted within window", testNow.Add(10 * time.Hour), models.StatusSubmitted, false},
		{"won within window", testNow.Add(10 * time.Hour), models.StatusWon, false},
		{"lost with past deadline", testNow.Add(-100 * time.Hour), models.StatusLost, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsActionableUrgent(tt.deadline, tt.status, testNow)
			if result != tt.expected {
				t.Errorf("IsActionableUrgent(%v, %q) = %v, expected %v",
					tt.deadline, tt.status, result, tt.expected)
			}
		})
	}
}

// The two predicates intentionally disagree on overdue deadlines: the
// board keeps tinting them Urgent while attention counts drop them.
func TestOverduePredicatesDiverge(t *testing.T) {
	overdue := testNow.Add(-5 * time.Hour)

	if got := ClassifyDeadline(overdue, models.StatusDrafting, testNow); got != UrgencyUrgent {
		t.Errorf("ClassifyDeadline on overdue = %v, expected Urgent", got)
	}
	if IsActionableUrgent(overdue, models.StatusDrafting, testNow) {
		t.Error("IsActionableUrgent on overdue = true, expected false")
	}
}
