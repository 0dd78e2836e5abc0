package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mindmate/mindmate-server/internal/insights"
	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// MoodService covers explicit mood tracking and the aggregation engine.
type MoodService struct {
	store store.Store
}

func NewMoodService(s store.Store) *MoodService {
	return &MoodService{store: s}
}

// SaveMood records an explicit mood submission. The label must be one of
// the six enum values; the crisis marker is not a mood and is rejected
// here like any other out-of-enum string.
func (s *MoodService) SaveMood(ctx context.Context, userID string, label string, note string) (*model.MoodRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	m, ok := model.ParseMood(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidMood, label)
	}
	return s.store.Moods().Append(ctx, &model.MoodRecord{UserID: userID, Mood: m, Note: note})
}

// ListMoods returns the user's full mood history, ascending by timestamp.
func (s *MoodService) ListMoods(ctx context.Context, userID string) ([]*model.MoodRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	return s.store.Moods().ListByUser(ctx, userID, time.Time{})
}

// Patterns runs the aggregation engine over the user's history. now is
// injectable so tests can pin the calendar.
func (s *MoodService) Patterns(ctx context.Context, userID string, now time.Time) (*insights.MoodStats, error) {
	records, err := s.ListMoods(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := insights.AggregateMoodStats(records, now)
	return &stats, nil
}
