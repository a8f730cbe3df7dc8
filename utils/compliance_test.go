package utils

import (
	"testing"

	"github.com/google/uuid"
	"p9e.in/abpts/models"
)

func itemsWithStatuses(statuses ...models.ComplianceStatus) []models.ComplianceItem {
	items := make([]models.ComplianceItem, len(statuses))
	for i, s := range statuses {
		items[i] = models.ComplianceItem{Status: s}
	}
	return items
}

func TestComplianceRate(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.ComplianceItem
		expected int
	}{
		{"empty checklist", nil, 0},
		{"all pending", itemsWithStatuses(models.ComplianceStatusPending, models.ComplianceStatusPending), 0},
		{"all compliant", itemsWithStatuses(models.ComplianceStatusCompliant, models.ComplianceStatusCompliant), 100},
		{"two of three", itemsWithStatuses(
			models.ComplianceStatusCompliant,
			models.ComplianceStatusCompliant,
			models.ComplianceStatusPending), 67},
		{"one of three", itemsWithStatuses(
			models.ComplianceStatusCompliant,
			models.ComplianceStatusNonCompliant,
			models.ComplianceStatusPending), 33},
		// 1/8 = 12.5 rounds up, not to even
		{"half rounds up", itemsWithStatuses(
			models.ComplianceStatusCompliant,
			models.ComplianceStatusPending,
			models.ComplianceStatusPending,
			models.ComplianceStatusPending,
			models.ComplianceStatusPending,
			models.ComplianceStatusPending,
			models.ComplianceStatusPending,
			models.ComplianceStatusPending), 13},
		{"non-compliant is not compliant", itemsWithStatuses(
			models.ComplianceStatusNonCompliant,
			models.ComplianceStatusNonCompliant), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComplianceRate(tt.items)
			if result != tt.expected {
				t.Errorf("ComplianceRate() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestPortfolioComplianceRate(t *testing.T) {
	liveOpp := uuid.New()
	deletedOpp := uuid.New()
	known := map[uuid.UUID]struct{}{liveOpp: {}}

	items := []models.ComplianceItem{
		{OpportunityID: liveOpp, Status: models.ComplianceStatusCompliant},
		{OpportunityID: liveOpp, Status: models.ComplianceStatusPending},
		// Orphans: parent was deleted, must not count either way
		{OpportunityID: deletedOpp, Status: models.ComplianceStatusCompliant},
		{OpportunityID: deletedOpp, Status: models.ComplianceStatusCompliant},
	}

	rate, orphans := PortfolioComplianceRate(items, known)
	if rate != 50 {
		t.Errorf("rate = %d, expected 50 (orphans must be excluded)", rate)
	}
	if orphans != 2 {
		t.Errorf("orphans = %d, expected 2", orphans)
	}
}

func TestPortfolioComplianceRateAllOrphans(t *testing.T) {
	items := []models.ComplianceItem{
		{OpportunityID: uuid.New(), Status: models.ComplianceStatusCompliant},
	}

	rate, orphans := PortfolioComplianceRate(items, map[uuid.UUID]struct{}{})
	if rate != 0 {
		t.Errorf("rate = %d, expected 0 when nothing survives filtering", rate)
	}
	if orphans != 1 {
		t.Errorf("orphans = %d, expected 1", orphans)
	}
}
