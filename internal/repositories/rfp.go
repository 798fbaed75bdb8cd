package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/shared"
)

// RFPRepository provides persistence for [models.RFP] records.
type RFPRepository struct {
	db *sql.DB
}

// NewRFPRepository creates a new [RFPRepository] with the given database connection
func NewRFPRepository(db *sql.DB) *RFPRepository {
	return &RFPRepository{db: db}
}

// Create inserts a new record with a generated ID and sequence.
//
// A zero submission date defaults to the current time.
func (r *RFPRepository) Create(draft models.RFPDraft) (*models.RFP, error) {
	sequence, err := NextSequence(r.db, "rfps")
	if err != nil {
		return nil, fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	now := time.Now().UTC()

	dateSubmitted := draft.DateSubmitted
	if dateSubmitted.IsZero() {
		dateSubmitted = now
	}

	miscData, err := json.Marshal(draft.MiscData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode misc data: %w", err)
	}

	query := `
		INSERT INTO rfps (id, sequence, carrier_name, employee_count, misc_data, date_submitted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, draft.CarrierName, draft.EmployeeCount, string(miscData), dateSubmitted, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rfp: %w", err)
	}

	return &models.RFP{
		ID:            id,
		CarrierName:   draft.CarrierName,
		EmployeeCount: draft.EmployeeCount,
		MiscData:      draft.MiscData,
		DateSubmitted: dateSubmitted,
	}, nil
}

// List returns all records in insertion order.
func (r *RFPRepository) List() ([]models.RFP, error) {
	query := `
		SELECT id, carrier_name, employee_count, misc_data, date_submitted
		FROM rfps
		ORDER BY sequence
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rfps: %w", err)
	}
	defer rows.Close()

	rfps := make([]models.RFP, 0)
	for rows.Next() {
		rfp, err := scanRFP(rows.Scan)
		if err != nil {
			return nil, err
		}
		rfps = append(rfps, *rfp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rfps: %w", err)
	}

	return rfps, nil
}

// Get retrieves a record by ID.
//
// Returns [shared.ErrRFPNotFound] when no row matches.
func (r *RFPRepository) Get(id string) (*models.RFP, error) {
	query := `
		SELECT id, carrier_name, employee_count, misc_data, date_submitted
		FROM rfps
		WHERE id = ?
	`

	row := r.db.QueryRow(query, id)
	rfp, err := scanRFP(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrRFPNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rfp: %w", err)
	}

	return rfp, nil
}

// Update performs a full replace of the record with the given ID.
//
// Returns [shared.ErrRFPNotFound] when the ID does not exist. A zero
// submission date defaults to the current time, matching Create.
func (r *RFPRepository) Update(id string, draft models.RFPDraft) (*models.RFP, error) {
	dateSubmitted := draft.DateSubmitted
	if dateSubmitted.IsZero() {
		dateSubmitted = time.Now().UTC()
	}

	miscData, err := json.Marshal(draft.MiscData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode misc data: %w", err)
	}

	query := `
		UPDATE rfps
		SET carrier_name = ?, employee_count = ?, misc_data = ?, date_submitted = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, draft.CarrierName, draft.EmployeeCount, string(miscData), dateSubmitted, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update rfp: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrRFPNotFound, id)
	}

	return &models.RFP{
		ID:            id,
		CarrierName:   draft.CarrierName,
		EmployeeCount: draft.EmployeeCount,
		MiscData:      draft.MiscData,
		DateSubmitted: dateSubmitted,
	}, nil
}

// Delete removes the record with the given ID.
//
// Returns [shared.ErrRFPNotFound] when the ID does not exist, so a repeated
// delete surfaces the record's absence rather than silently succeeding.
func (r *RFPRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM rfps WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete rfp: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", shared.ErrRFPNotFound, id)
	}

	return nil
}

// scanRFP reads one row into a record, decoding the misc_data JSON column.
func scanRFP(scan func(dest ...any) error) (*models.RFP, error) {
	var (
		id            string
		carrierName   string
		employeeCount int
		miscData      string
		dateSubmitted time.Time
	)

	if err := scan(&id, &carrierName, &employeeCount, &miscData, &dateSubmitted); err != nil {
		return nil, err
	}

	rfp := &models.RFP{
		ID:            id,
		CarrierName:   carrierName,
		EmployeeCount: employeeCount,
		DateSubmitted: dateSubmitted,
	}

	if miscData != "" {
		if err := json.Unmarshal([]byte(miscData), &rfp.MiscData); err != nil {
			return nil, fmt.Errorf("failed to decode misc data: %w", err)
		}
	}

	return rfp, nil
}
