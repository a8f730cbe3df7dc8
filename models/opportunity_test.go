package models

import (
	"encoding/json"
	"testing"
	"time"
)

func validOpportunity() Opportunity {
	return Opportunity{
		Client:               "Acme",
		ProjectType:          "ERP Rollout",
		RFPReleaseDate:       "2025-06-01",
		SubmissionDeadline:   JSONTime(time.Date(2025, 6, 20, 17, 0, 0, 0, time.UTC)),
		ProposalOwner:        "Jane Doe",
		Status:               StatusDrafting,
		CompliancePercentage: 50,
	}
}

// Risk flags are an ordered list: entry order must survive the JSON
// round trip, and the column value for an empty list is [], not null.
func TestRiskFlagsRoundTrip(t *testing.T) {
	o := validOpportunity()
	o.RiskFlags = RiskFlags{"Tight Timeline", "Complex Requirements"}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Opportunity
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out.RiskFlags) != 2 || out.RiskFlags[0] != "Tight Timeline" || out.RiskFlags[1] != "Complex Requirements" {
		t.Errorf("RiskFlags = %v, expected order preserved", out.RiskFlags)
	}

	value, err := RiskFlags{}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if value == nil {
		t.Error("empty RiskFlags column value is nil, expected []")
	}
}

func TestOpportunityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Opportunity)
		wantErr bool
	}{
		{"valid", func(o *Opportunity) {}, false},
		{"missing client", func(o *Opportunity) { o.Client = "" }, true},
		{"missing project type", func(o *Opportunity) { o.ProjectType = "" }, true},
		{"malformed release date", func(o *Opportunity) { o.RFPReleaseDate = "Jan 5th" }, true},
		{"zero deadline", func(o *Opportunity) { o.SubmissionDeadline = JSONTime(time.Time{}) }, true},
		{"compliance over 100", func(o *Opportunity) { o.CompliancePercentage = 120 }, true},
		{"compliance negative", func(o *Opportunity) { o.CompliancePercentage = -1 }, true},
		// Release after deadline is accepted: the fields are independent
		{"release after deadline", func(o *Opportunity) { o.RFPReleaseDate = "2026-01-01" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOpportunity()
			tt.mutate(&o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
