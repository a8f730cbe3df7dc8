package utils

import (
	"time"

	"p9e.in/abpts/models"
)

// Summarize folds the full opportunity collection into the portfolio
// summary shown on the dashboard and embedded in exported reports.
//
// Semantics worth spelling out because they are easy to "correct" by
// accident:
//   - StatusCounts only carries statuses that actually occur.
//   - WinRate divides won opportunities by the total collection size,
//     including unresolved ones. A portfolio of [Won, Won, Lost, Drafting]
//     reports 50, not 67.
//   - AverageCompliance averages the stored compliance_percentage field,
//     not the rate derived from compliance item checklists.
//   - UrgentDeadlines uses the actionable predicate: active status and
//     0 < hours remaining <= 48. Already-passed deadlines do not count.
//
// An empty collection produces all zeros and an empty map.
func Summarize(opportunities []models.Opportunity, now time.Time) models.StatisticsSummary {
	summary := models.StatisticsSummary{
		TotalOpportunities: len(opportunities),
		StatusCounts:       make(map[models.OpportunityStatus]int),
	}

	won := 0
	complianceTotal := 0
	for _, opp := range opportunities {
		summary.StatusCounts[opp.Status]++
		if opp.Status == models.StatusWon {
			won++
		}
		complianceTotal += opp.CompliancePercentage
		if IsActionableUrgent(opp.SubmissionDeadline.Time(), opp.Status, now) {
			summary.UrgentDeadlines++
		}
	}

	if summary.TotalOpportunities > 0 {
		total := float64(summary.TotalOpportunities)
		summary.WinRate = roundPercent(float64(won) / total * 100)
		summary.AverageCompliance = roundPercent(float64(complianceTotal) / total)
	}
	return summary
}
