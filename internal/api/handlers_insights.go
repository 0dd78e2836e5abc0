package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mindmate/mindmate-server/internal/api/respond"
	"github.com/mindmate/mindmate-server/internal/services"
)

// InsightsHandler serves the dashboard payload.
type InsightsHandler struct {
	svc *services.InsightsService
	now func() time.Time
}

func NewInsightsHandler(svc *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{svc: svc, now: func() time.Time { return time.Now().UTC() }}
}

// Insights GET /api/insights/{userId}
func (h *InsightsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	out, err := h.svc.Build(r.Context(), userID, h.now())
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
