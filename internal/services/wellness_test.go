package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store/memory"
)

func TestWellnessService_CheckInValidation(t *testing.T) {
	svc := NewWellnessService(memory.New())
	ctx := context.Background()

	_, err := svc.AddCheckIn(ctx, &model.CheckIn{UserID: "u1", Energy: 0, SleepQuality: 5, StressLevel: 5})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.AddCheckIn(ctx, &model.CheckIn{UserID: "u1", Energy: 5, SleepQuality: 11, StressLevel: 5})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.AddCheckIn(ctx, &model.CheckIn{Energy: 5, SleepQuality: 5, StressLevel: 5})
	assert.ErrorIs(t, err, model.ErrValidation)

	ci, err := svc.AddCheckIn(ctx, &model.CheckIn{UserID: "u1", Energy: 7, SleepQuality: 6, StressLevel: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, ci.CheckInID)
}

func TestWellnessService_Streak(t *testing.T) {
	st := memory.New()
	svc := NewWellnessService(st)
	ctx := context.Background()
	now := time.Date(2025, 6, 18, 20, 0, 0, 0, time.UTC)

	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	// Three consecutive days ending today, mixed record kinds.
	_, err := st.Wellness().AppendCheckIn(ctx, &model.CheckIn{UserID: "u1", Energy: 5, SleepQuality: 5, StressLevel: 5, Timestamp: day(0)})
	require.NoError(t, err)
	_, err = st.Wellness().AppendGratitude(ctx, &model.GratitudeEntry{UserID: "u1", Text: "morning walk", Timestamp: day(-1)})
	require.NoError(t, err)
	_, err = st.Wellness().AppendActivity(ctx, &model.ActivityLog{UserID: "u1", Activity: "meditation", Timestamp: day(-2)})
	require.NoError(t, err)
	// A gap, then an older record that must not count.
	_, err = st.Wellness().AppendActivity(ctx, &model.ActivityLog{UserID: "u1", Activity: "run", Timestamp: day(-4)})
	require.NoError(t, err)

	streak, err := svc.Streak(ctx, "u1", now)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestWellnessService_StreakZeroWithoutToday(t *testing.T) {
	st := memory.New()
	svc := NewWellnessService(st)
	ctx := context.Background()
	now := time.Date(2025, 6, 18, 20, 0, 0, 0, time.UTC)

	_, err := st.Wellness().AppendActivity(ctx, &model.ActivityLog{UserID: "u1", Activity: "run", Timestamp: now.AddDate(0, 0, -1)})
	require.NoError(t, err)

	streak, err := svc.Streak(ctx, "u1", now)
	require.NoError(t, err)
	assert.Zero(t, streak)
}
