package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Validation runs before any store access, so rejected bodies are
// covered without a database. Create and update enforce the same rules:
// a full-replace update with a missing opportunity_id must be rejected,
// not saved as an orphan parented to the zero UUID.
func TestComplianceItemValidation(t *testing.T) {
	oppID := uuid.New()

	tests := []struct {
		name string
		body string
	}{
		{"missing opportunity_id", `{"requirement":"Submit tax clearance"}`},
		{"zero opportunity_id", fmt.Sprintf(`{"opportunity_id":%q,"requirement":"Submit tax clearance"}`, uuid.Nil)},
		{"missing requirement", fmt.Sprintf(`{"opportunity_id":%q}`, oppID)},
		{"malformed json", `{"requirement":`},
	}

	handlers := []struct {
		name    string
		method  string
		handler http.HandlerFunc
		vars    map[string]string
	}{
		{"create", http.MethodPost, CreateComplianceItem, nil},
		{"update", http.MethodPut, UpdateComplianceItem, map[string]string{"id": uuid.New().String()}},
	}

	for _, h := range handlers {
		for _, tt := range tests {
			t.Run(h.name+" "+tt.name, func(t *testing.T) {
				req := httptest.NewRequest(h.method, "/api/compliance", strings.NewReader(tt.body))
				if h.vars != nil {
					req = mux.SetURLVars(req, h.vars)
				}
				rec := httptest.NewRecorder()

				h.handler(rec, req)

				if rec.Code != http.StatusBadRequest {
					t.Errorf("status = %d, expected %d", rec.Code, http.StatusBadRequest)
				}
			})
		}
	}
}
