package utils

import (
	"math"

	"github.com/google/uuid"
	"p9e.in/abpts/models"
)

// ComplianceRate computes the percentage of compliant items in a
// requirement checklist, rounded half-up to the nearest integer. An empty
// checklist yields 0, not an error.
//
// This derived figure is distinct from Opportunity.CompliancePercentage,
// which is maintained by hand on the tracker board; the two may diverge
// and are never reconciled.
func ComplianceRate(items []models.ComplianceItem) int {
	if len(items) == 0 {
		return 0
	}
	compliant := 0
	for _, item := range items {
		if item.Status == models.ComplianceStatusCompliant {
			compliant++
		}
	}
	return roundPercent(float64(compliant) / float64(len(items)) * 100)
}

// PortfolioComplianceRate computes the compliance rate across every
// checklist in the portfolio. Items whose parent opportunity no longer
// exists are excluded from the calculation rather than failing it; the
// number of such orphans is returned so the caller can log the integrity
// warning.
func PortfolioComplianceRate(items []models.ComplianceItem, known map[uuid.UUID]struct{}) (rate int, orphans int) {
	valid := make([]models.ComplianceItem, 0, len(items))
	for _, item := range items {
		if _, ok := known[item.OpportunityID]; !ok {
			orphans++
			continue
		}
		valid = append(valid, item)
	}
	return ComplianceRate(valid), orphans
}

// roundPercent rounds half-up to the nearest integer. Inputs here are
// always non-negative, so math.Round's half-away-from-zero is half-up.
func roundPercent(v float64) int {
	return int(math.Round(v))
}
