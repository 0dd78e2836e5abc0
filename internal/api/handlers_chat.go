// Package api is the HTTP transport: thin handlers over the services,
// wired by NewRouter.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindmate/mindmate-server/internal/api/respond"
	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/services"
)

// ChatHandler serves the companion chat and mood detection endpoints.
type ChatHandler struct {
	svc *services.ChatService
}

func NewChatHandler(svc *services.ChatService) *ChatHandler { return &ChatHandler{svc: svc} }

// Chat POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string              `json:"userId"`
		SessionID string              `json:"sessionId"`
		Message   string              `json:"message"`
		History   []model.ChatMessage `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	res, err := h.svc.Chat(r.Context(), req.UserID, req.SessionID, req.Message, req.History)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

// DetectMood POST /api/detect-mood
func (h *ChatHandler) DetectMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	m, err := h.svc.DetectMood(r.Context(), req.Text)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"mood": m})
}
