package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mindmate/mindmate-server/internal/api/respond"
	"github.com/mindmate/mindmate-server/internal/services"
)

// MoodHandler serves explicit mood tracking and the pattern rollups.
type MoodHandler struct {
	svc *services.MoodService
	now func() time.Time
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler {
	return &MoodHandler{svc: svc, now: func() time.Time { return time.Now().UTC() }}
}

// SaveMood POST /api/moods
func (h *MoodHandler) SaveMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		Mood   string `json:"mood"`
		Note   string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	rec, err := h.svc.SaveMood(r.Context(), req.UserID, req.Mood, req.Note)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// ListMoods GET /api/moods/{userId}
func (h *MoodHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	lst, err := h.svc.ListMoods(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"moods": lst, "count": len(lst)})
}

// Patterns GET /api/mood-patterns/{userId}
func (h *MoodHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	stats, err := h.svc.Patterns(r.Context(), userID, h.now())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}
