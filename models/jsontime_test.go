package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"rfc3339 zulu", `"2025-05-16T15:32:25Z"`, false},
		{"rfc3339 offset", `"2025-05-16T15:32:25+05:30"`, false},
		{"fractional seconds", `"2025-05-16T15:32:25.181226Z"`, false},
		{"no timezone", `"2025-05-16T15:32:25"`, false},
		{"date only", `"2025-05-16"`, true},
		{"garbage", `"next tuesday"`, true},
		{"empty", `""`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			err := json.Unmarshal([]byte(tt.input), &jt)
			if (err != nil) != tt.wantErr {
				t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestJSONTimeRoundTrip(t *testing.T) {
	in := time.Date(2025, 5, 16, 15, 32, 25, 0, time.UTC)

	data, err := json.Marshal(JSONTime(in))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out JSONTime
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !out.Time().Equal(in) {
		t.Errorf("round trip = %v, expected %v", out.Time(), in)
	}
}
