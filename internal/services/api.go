// HTTP implementation of the Store contract against the /rfps collection
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/shared"
)

var _ Store = (*HTTPStore)(nil)

// HTTPStore talks to a remote /rfps collection over HTTP/JSON.
type HTTPStore struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPStore creates a store client for the collection at baseURL.
func NewHTTPStore(baseURL string, client *http.Client) *HTTPStore {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPStore{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// List implements [Store].
func (s *HTTPStore) List(ctx context.Context) ([]models.RFP, error) {
	body, err := s.do(ctx, http.MethodGet, "/rfps", nil)
	if err != nil {
		return nil, err
	}

	var rfps []models.RFP
	if err := json.Unmarshal(body, &rfps); err != nil {
		return nil, fmt.Errorf("%w: failed to decode list response: %v", shared.ErrAPIRequest, err)
	}

	return rfps, nil
}

// Get implements [Store].
func (s *HTTPStore) Get(ctx context.Context, id string) (*models.RFP, error) {
	body, err := s.do(ctx, http.MethodGet, "/rfps/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeRFP(body)
}

// Create implements [Store].
func (s *HTTPStore) Create(ctx context.Context, draft models.RFPDraft) (*models.RFP, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	body, err := s.do(ctx, http.MethodPost, "/rfps", payload)
	if err != nil {
		return nil, err
	}

	return decodeRFP(body)
}

// Update implements [Store].
func (s *HTTPStore) Update(ctx context.Context, id string, draft models.RFPDraft) (*models.RFP, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	body, err := s.do(ctx, http.MethodPut, "/rfps/"+id, payload)
	if err != nil {
		return nil, err
	}

	return decodeRFP(body)
}

// Delete implements [Store].
func (s *HTTPStore) Delete(ctx context.Context, id string) error {
	_, err := s.do(ctx, http.MethodDelete, "/rfps/"+id, nil)
	return err
}

// do executes one request and returns the response body, mapping failure
// modes to the shared error taxonomy.
func (s *HTTPStore) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", shared.ErrRFPNotFound, method, path)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, bytes.TrimSpace(body))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, bytes.TrimSpace(body))
	}

	return body, nil
}

func decodeRFP(body []byte) (*models.RFP, error) {
	var rfp models.RFP
	if err := json.Unmarshal(body, &rfp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode record: %v", shared.ErrAPIRequest, err)
	}
	return &rfp, nil
}
