// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/shared"
)

// MockStore is a test double for services.Store that records every call and
// serves canned data.
type MockStore struct {
	RFPs []models.RFP // collection served by List and Get
	Err  error        // when set, every operation fails with this error

	ListCalls   int
	GetCalls    int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	LastID    string
	LastDraft models.RFPDraft
}

func (m *MockStore) List(ctx context.Context) ([]models.RFP, error) {
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.RFP(nil), m.RFPs...), nil
}

func (m *MockStore) Get(ctx context.Context, id string) (*models.RFP, error) {
	m.GetCalls++
	m.LastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	for _, rfp := range m.RFPs {
		if rfp.ID == id {
			found := rfp
			return &found, nil
		}
	}
	return nil, shared.ErrRFPNotFound
}

func (m *MockStore) Create(ctx context.Context, draft models.RFPDraft) (*models.RFP, error) {
	m.CreateCalls++
	m.LastDraft = draft
	if m.Err != nil {
		return nil, m.Err
	}
	rfp := models.RFP{
		ID:            shared.GenerateID(),
		CarrierName:   draft.CarrierName,
		EmployeeCount: draft.EmployeeCount,
		MiscData:      draft.MiscData,
		DateSubmitted: draft.DateSubmitted,
	}
	m.RFPs = append(m.RFPs, rfp)
	return &rfp, nil
}

func (m *MockStore) Update(ctx context.Context, id string, draft models.RFPDraft) (*models.RFP, error) {
	m.UpdateCalls++
	m.LastID = id
	m.LastDraft = draft
	if m.Err != nil {
		return nil, m.Err
	}
	for i, rfp := range m.RFPs {
		if rfp.ID == id {
			m.RFPs[i] = models.RFP{
				ID:            id,
				CarrierName:   draft.CarrierName,
				EmployeeCount: draft.EmployeeCount,
				MiscData:      draft.MiscData,
				DateSubmitted: draft.DateSubmitted,
			}
			updated := m.RFPs[i]
			return &updated, nil
		}
	}
	return nil, shared.ErrRFPNotFound
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	m.LastID = id
	if m.Err != nil {
		return m.Err
	}
	for i, rfp := range m.RFPs {
		if rfp.ID == id {
			m.RFPs = append(m.RFPs[:i], m.RFPs[i+1:]...)
			return nil
		}
	}
	return shared.ErrRFPNotFound
}

// SampleRFP builds a record with stable field values for assertions.
func SampleRFP(id, carrier string, employees int) models.RFP {
	return models.RFP{
		ID:            id,
		CarrierName:   carrier,
		EmployeeCount: employees,
		MiscData:      "sample",
		DateSubmitted: time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC),
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
