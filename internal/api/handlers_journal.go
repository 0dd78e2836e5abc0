package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mindmate/mindmate-server/internal/api/respond"
	"github.com/mindmate/mindmate-server/internal/services"
)

// JournalHandler serves the journaling endpoints.
type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// AddEntry POST /api/journal
func (h *JournalHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		Entry  string `json:"entry"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	e, err := h.svc.AddEntry(r.Context(), req.UserID, req.Entry)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, e)
}

// ListEntries GET /api/journal/{userId}
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	lst, err := h.svc.ListEntries(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": lst, "count": len(lst)})
}
