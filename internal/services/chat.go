// Package services orchestrates the use cases behind the HTTP API. Each
// service takes the store plus the collaborators it needs; all business
// decisions live here so the handlers stay thin.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/mood"
	"github.com/mindmate/mindmate-server/internal/safety"
	"github.com/mindmate/mindmate-server/internal/store"
)

// Responder produces a companion reply for a user message given the
// conversation so far.
type Responder interface {
	GenerateReply(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

// FallbackReply is returned when the generative backend is unavailable.
const FallbackReply = "I'm having trouble connecting right now. Please try again in a moment."

// ChatService runs a chat turn: crisis screening, reply generation, mood
// detection and persistence.
type ChatService struct {
	store    store.Store
	resp     Responder
	detector mood.Detector
	crisis   *safety.Detector
	log      zerolog.Logger
}

func NewChatService(s store.Store, resp Responder, detector mood.Detector, crisis *safety.Detector, log zerolog.Logger) *ChatService {
	return &ChatService{store: s, resp: resp, detector: detector, crisis: crisis, log: log}
}

// ChatResult is everything a chat turn produces. Mood is a six-label
// value, or the crisis marker when the safety screen fired.
type ChatResult struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	Mood      string `json:"mood"`
	Crisis    bool   `json:"crisis"`
}

// Chat handles one user message. The crisis screen runs before anything
// else: on a hit the turn returns the fixed safety payload without
// calling the generative backend and without contributing to mood
// analytics. Otherwise the companion reply comes from the Responder
// (canned fallback if it fails) and the detected mood is recorded.
func (s *ChatService) Chat(ctx context.Context, userID, sessionID, message string, history []model.ChatMessage) (*ChatResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", model.ErrValidation)
	}

	var (
		reply     string
		moodLabel string
		crisis    = s.crisis.Detect(message)
	)

	if crisis {
		reply = safety.SafetyMessage
		moodLabel = model.CrisisMarker
		s.log.Info().Str("userId", userID).Msg("crisis phrase detected, returning safety payload")
	} else {
		var err error
		reply, err = s.resp.GenerateReply(ctx, history, message)
		if err != nil {
			s.log.Error().Stack().Err(err).Str("userId", userID).Msg("reply generation failed, using fallback")
			reply = FallbackReply
		}

		// The composed detector is total; an error here is a programming
		// mistake, not an operational one.
		m, err := s.detector.DetectMood(ctx, message)
		if err != nil {
			m = model.MoodNeutral
		}
		moodLabel = string(m)
	}

	msgs := append(append([]model.ChatMessage(nil), history...),
		model.ChatMessage{Role: model.RoleUser, Content: message},
		model.ChatMessage{Role: model.RoleAssistant, Content: reply},
	)
	sess, err := s.store.Sessions().Upsert(ctx, &model.ChatSession{
		SessionID: sessionID,
		UserID:    userID,
		Messages:  msgs,
	})
	if err != nil {
		return nil, fmt.Errorf("save chat session: %w", err)
	}

	if !crisis {
		// Best effort: the reply is already committed, a failed mood
		// record only degrades analytics.
		if _, err := s.store.Moods().Append(ctx, &model.MoodRecord{
			UserID: userID,
			Mood:   model.Mood(moodLabel),
			Note:   "detected from chat",
		}); err != nil {
			s.log.Error().Stack().Err(err).Str("userId", userID).Msg("mood record append failed")
		}
	}

	return &ChatResult{
		SessionID: sess.SessionID,
		Reply:     reply,
		Mood:      moodLabel,
		Crisis:    crisis,
	}, nil
}

// DetectMood exposes the detector strategy directly.
func (s *ChatService) DetectMood(ctx context.Context, text string) (model.Mood, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", model.ErrValidation)
	}
	return s.detector.DetectMood(ctx, text)
}
