package services

import (
	"context"

	"github.com/desertthunder/rfx/internal/models"
)

// Store defines the contract for the remote RFP collection. The store is the
// single source of truth: callers re-read after any mutation instead of
// patching local copies.
type Store interface {
	// List retrieves every record in the collection. No filtering or
	// pagination is part of the contract.
	List(ctx context.Context) ([]models.RFP, error)

	// Get retrieves a single record by id.
	// Returns shared.ErrRFPNotFound if the id does not exist.
	Get(ctx context.Context, id string) (*models.RFP, error)

	// Create submits an id-less draft; the store assigns the id and returns
	// the persisted record.
	Create(ctx context.Context, draft models.RFPDraft) (*models.RFP, error)

	// Update replaces every field of the record with the given id.
	// Full-replace semantics, not a merge patch.
	Update(ctx context.Context, id string, draft models.RFPDraft) (*models.RFP, error)

	// Delete removes the record with the given id.
	// Returns shared.ErrRFPNotFound if it is already gone.
	Delete(ctx context.Context, id string) error
}
