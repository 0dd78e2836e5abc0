package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// WellnessService covers daily check-ins, gratitude notes, activity logs
// and the habit streak derived from them.
type WellnessService struct {
	store store.Store
}

func NewWellnessService(s store.Store) *WellnessService {
	return &WellnessService{store: s}
}

func validRating(n int) bool { return n >= 1 && n <= 10 }

func (s *WellnessService) AddCheckIn(ctx context.Context, c *model.CheckIn) (*model.CheckIn, error) {
	if c.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if !validRating(c.Energy) || !validRating(c.SleepQuality) || !validRating(c.StressLevel) {
		return nil, fmt.Errorf("%w: ratings must be between 1 and 10", model.ErrValidation)
	}
	return s.store.Wellness().AppendCheckIn(ctx, c)
}

func (s *WellnessService) ListCheckIns(ctx context.Context, userID string) ([]*model.CheckIn, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	return s.store.Wellness().ListCheckIns(ctx, userID, time.Time{})
}

func (s *WellnessService) AddGratitude(ctx context.Context, userID, text string) (*model.GratitudeEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", model.ErrValidation)
	}
	return s.store.Wellness().AppendGratitude(ctx, &model.GratitudeEntry{UserID: userID, Text: text})
}

func (s *WellnessService) ListGratitude(ctx context.Context, userID string) ([]*model.GratitudeEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	return s.store.Wellness().ListGratitude(ctx, userID, time.Time{})
}

func (s *WellnessService) LogActivity(ctx context.Context, userID, activity string) (*model.ActivityLog, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if strings.TrimSpace(activity) == "" {
		return nil, fmt.Errorf("%w: activity is required", model.ErrValidation)
	}
	return s.store.Wellness().AppendActivity(ctx, &model.ActivityLog{UserID: userID, Activity: activity})
}

func (s *WellnessService) ListActivities(ctx context.Context, userID string) ([]*model.ActivityLog, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	return s.store.Wellness().ListActivities(ctx, userID, time.Time{})
}

// Streak counts consecutive calendar days ending today on which the user
// recorded any wellness activity (check-in, gratitude or activity log).
// A day without records breaks the streak; no records today means zero.
func (s *WellnessService) Streak(ctx context.Context, userID string, now time.Time) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}

	days := map[string]struct{}{}

	checkins, err := s.store.Wellness().ListCheckIns(ctx, userID, time.Time{})
	if err != nil {
		return 0, err
	}
	for _, c := range checkins {
		days[c.Timestamp.UTC().Format("2006-01-02")] = struct{}{}
	}

	gratitude, err := s.store.Wellness().ListGratitude(ctx, userID, time.Time{})
	if err != nil {
		return 0, err
	}
	for _, g := range gratitude {
		days[g.Timestamp.UTC().Format("2006-01-02")] = struct{}{}
	}

	activities, err := s.store.Wellness().ListActivities(ctx, userID, time.Time{})
	if err != nil {
		return 0, err
	}
	for _, a := range activities {
		days[a.Timestamp.UTC().Format("2006-01-02")] = struct{}{}
	}

	streak := 0
	for day := now.UTC(); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}
