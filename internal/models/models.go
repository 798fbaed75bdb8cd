package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RFP is one carrier submission record, the store's authoritative copy.
//
// MiscData is free-form: whatever JSON value the user stored is carried
// through unmodified.
type RFP struct {
	ID            string    `json:"id"`
	CarrierName   string    `json:"carrier_name"`
	EmployeeCount int       `json:"employee_count"`
	MiscData      any       `json:"misc_data"`
	DateSubmitted time.Time `json:"date_submitted"`
}

// RFPDraft is the payload shape for create and update calls. Update semantics
// are a full replace of every field, not a merge patch.
type RFPDraft struct {
	CarrierName   string    `json:"carrier_name"`
	EmployeeCount int       `json:"employee_count"`
	MiscData      any       `json:"misc_data"`
	DateSubmitted time.Time `json:"date_submitted"`
}

// Draft returns the record's mutable fields as a draft, the starting point
// for a full-replace update.
func (r RFP) Draft() RFPDraft {
	return RFPDraft{
		CarrierName:   r.CarrierName,
		EmployeeCount: r.EmployeeCount,
		MiscData:      r.MiscData,
		DateSubmitted: r.DateSubmitted,
	}
}

// MiscString renders an arbitrary misc_data value for display or editing.
// Strings pass through untouched; anything structured is rendered as JSON.
func MiscString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
