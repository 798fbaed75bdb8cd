package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/repositories"
	"github.com/desertthunder/rfx/internal/shared"
)

// RFPHandler serves the /rfps collection (see the package doc for the route
// table). It implements [Handler].
type RFPHandler struct {
	repo   *repositories.RFPRepository
	logger *log.Logger
}

// NewRFPHandler creates a new [RFPHandler] backed by the given repository.
func NewRFPHandler(repo *repositories.RFPRepository, logger *log.Logger) *RFPHandler {
	return &RFPHandler{repo: repo, logger: logger}
}

// Routes returns the path patterns this handler serves.
func (h *RFPHandler) Routes() []string {
	return []string{"/rfps", "/rfps/{id}"}
}

// ServeHTTP dispatches on method and the presence of an {id} path value.
func (h *RFPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch {
	case id == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case id == "" && r.Method == http.MethodPost:
		h.create(w, r)
	case id != "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case id != "" && r.Method == http.MethodPut:
		h.update(w, r, id)
	case id != "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *RFPHandler) list(w http.ResponseWriter, _ *http.Request) {
	rfps, err := h.repo.List()
	if err != nil {
		h.logger.Error("failed to list rfps", "error", err)
		http.Error(w, "Failed to list RFPs", http.StatusInternalServerError)
		return
	}

	h.respond(w, http.StatusOK, rfps)
}

func (h *RFPHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft models.RFPDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	rfp, err := h.repo.Create(draft)
	if err != nil {
		h.logger.Error("failed to create rfp", "error", err)
		http.Error(w, "Failed to create RFP", http.StatusInternalServerError)
		return
	}

	h.respond(w, http.StatusCreated, rfp)
}

func (h *RFPHandler) get(w http.ResponseWriter, _ *http.Request, id string) {
	rfp, err := h.repo.Get(id)
	if errors.Is(err, shared.ErrRFPNotFound) {
		http.Error(w, "RFP not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch rfp", "id", id, "error", err)
		http.Error(w, "Failed to fetch RFP", http.StatusInternalServerError)
		return
	}

	h.respond(w, http.StatusOK, rfp)
}

func (h *RFPHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var draft models.RFPDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	rfp, err := h.repo.Update(id, draft)
	if errors.Is(err, shared.ErrRFPNotFound) {
		http.Error(w, "RFP not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to update rfp", "id", id, "error", err)
		http.Error(w, "Failed to update RFP", http.StatusInternalServerError)
		return
	}

	h.respond(w, http.StatusOK, rfp)
}

func (h *RFPHandler) delete(w http.ResponseWriter, _ *http.Request, id string) {
	err := h.repo.Delete(id)
	if errors.Is(err, shared.ErrRFPNotFound) {
		http.Error(w, "RFP not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to delete rfp", "id", id, "error", err)
		http.Error(w, "Failed to delete RFP", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RFPHandler) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
