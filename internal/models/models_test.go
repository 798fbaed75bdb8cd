package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestRFPJSON(t *testing.T) {
	t.Run("marshals snake_case field names", func(t *testing.T) {
		rfp := RFP{
			ID:            "abc-123",
			CarrierName:   "Carrier X",
			EmployeeCount: 300,
			MiscData:      "notes",
			DateSubmitted: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
		}

		data, err := json.Marshal(rfp)
		if err != nil {
			t.Fatalf("failed to marshal RFP: %v", err)
		}

		for _, field := range []string{"id", "carrier_name", "employee_count", "misc_data", "date_submitted"} {
			if !strings.Contains(string(data), `"`+field+`"`) {
				t.Errorf("expected JSON to contain field %q, got %s", field, data)
			}
		}

		if !strings.Contains(string(data), "2024-03-05T12:00:00Z") {
			t.Errorf("expected ISO-8601 date_submitted, got %s", data)
		}
	})

	t.Run("draft has no id field", func(t *testing.T) {
		draft := RFPDraft{CarrierName: "Carrier Y"}

		data, err := json.Marshal(draft)
		if err != nil {
			t.Fatalf("failed to marshal draft: %v", err)
		}

		if strings.Contains(string(data), `"id"`) {
			t.Errorf("draft payload must not carry an id, got %s", data)
		}
	})

	t.Run("unmarshals server response", func(t *testing.T) {
		payload := `{
			"id": "9f0a",
			"carrier_name": "Carrier A",
			"employee_count": 100,
			"misc_data": {"region": "west"},
			"date_submitted": "2024-06-01T09:30:00Z"
		}`

		var rfp RFP
		if err := json.Unmarshal([]byte(payload), &rfp); err != nil {
			t.Fatalf("failed to unmarshal RFP: %v", err)
		}

		if rfp.CarrierName != "Carrier A" {
			t.Errorf("expected carrier name Carrier A, got %s", rfp.CarrierName)
		}
		if rfp.EmployeeCount != 100 {
			t.Errorf("expected employee count 100, got %d", rfp.EmployeeCount)
		}
		if rfp.DateSubmitted.IsZero() {
			t.Error("expected date_submitted to be parsed")
		}

		misc, ok := rfp.MiscData.(map[string]any)
		if !ok {
			t.Fatalf("expected structured misc_data, got %T", rfp.MiscData)
		}
		if misc["region"] != "west" {
			t.Errorf("expected misc_data region west, got %v", misc["region"])
		}
	})
}

func TestDraft(t *testing.T) {
	rfp := RFP{
		ID:            "abc",
		CarrierName:   "Carrier B",
		EmployeeCount: 200,
		MiscData:      "misc",
		DateSubmitted: time.Now(),
	}

	draft := rfp.Draft()

	if draft.CarrierName != rfp.CarrierName || draft.EmployeeCount != rfp.EmployeeCount {
		t.Error("expected draft to copy record fields")
	}
}

func TestMiscString(t *testing.T) {
	tc := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "plain string", in: "hello", want: "hello"},
		{name: "structured value", in: map[string]any{"k": "v"}, want: `{"k":"v"}`},
		{name: "number", in: float64(42), want: "42"},
	}

	for _, c := range tc {
		t.Run(c.name, func(t *testing.T) {
			if got := MiscString(c.in); got != c.want {
				t.Errorf("expected %q, got %q", c.want, got)
			}
		})
	}
}
