package models

// StatisticsSummary is the derived portfolio-level aggregate returned by
// the statistics endpoint and consumed by the report generators. It is
// recomputed on demand from the live opportunity collection and never
// persisted.
//
// StatusCounts is sparse: statuses with no opportunities are omitted
// rather than zero-filled. WinRate divides won opportunities by the full
// collection size (not just resolved ones) and AverageCompliance averages
// the manually maintained compliance_percentage field, not the rate
// derived from compliance items. Both are round-half-up integer
// percentages.
type StatisticsSummary struct {
	TotalOpportunities int                       `json:"total_opportunities"`
	StatusCounts       map[OpportunityStatus]int `json:"status_counts"`
	WinRate            int                       `json:"win_rate"`
	AverageCompliance  int                       `json:"average_compliance"`
	UrgentDeadlines    int                       `json:"urgent_deadlines"`
}
