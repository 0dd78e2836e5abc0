package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mindmate/mindmate-server/internal/api/respond"
	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/services"
)

// WellnessHandler serves check-ins, gratitude notes, activity logs and
// the habit streak.
type WellnessHandler struct {
	svc *services.WellnessService
	now func() time.Time
}

func NewWellnessHandler(svc *services.WellnessService) *WellnessHandler {
	return &WellnessHandler{svc: svc, now: func() time.Time { return time.Now().UTC() }}
}

// AddCheckIn POST /api/wellness/checkin
func (h *WellnessHandler) AddCheckIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID       string `json:"userId"`
		Energy       int    `json:"energy"`
		SleepQuality int    `json:"sleepQuality"`
		StressLevel  int    `json:"stressLevel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	ci, err := h.svc.AddCheckIn(r.Context(), &model.CheckIn{
		UserID:       req.UserID,
		Energy:       req.Energy,
		SleepQuality: req.SleepQuality,
		StressLevel:  req.StressLevel,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, ci)
}

// ListCheckIns GET /api/wellness/checkin/{userId}
func (h *WellnessHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	lst, err := h.svc.ListCheckIns(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"checkIns": lst, "count": len(lst)})
}

// AddGratitude POST /api/wellness/gratitude
func (h *WellnessHandler) AddGratitude(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	g, err := h.svc.AddGratitude(r.Context(), req.UserID, req.Text)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, g)
}

// ListGratitude GET /api/wellness/gratitude/{userId}
func (h *WellnessHandler) ListGratitude(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	lst, err := h.svc.ListGratitude(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": lst, "count": len(lst)})
}

// LogActivity POST /api/wellness/activities
func (h *WellnessHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"userId"`
		Activity string `json:"activity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	a, err := h.svc.LogActivity(r.Context(), req.UserID, req.Activity)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, a)
}

// ListActivities GET /api/wellness/activities/{userId}
func (h *WellnessHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	lst, err := h.svc.ListActivities(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"activities": lst, "count": len(lst)})
}

// Streak GET /api/wellness/streak/{userId}
func (h *WellnessHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	streak, err := h.svc.Streak(r.Context(), userID, h.now())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"streak": streak})
}
