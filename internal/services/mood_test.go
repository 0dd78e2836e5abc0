package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate/mindmate-server/internal/insights"
	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store/memory"
)

func TestMoodService_SaveAndList(t *testing.T) {
	svc := NewMoodService(memory.New())
	ctx := context.Background()

	r, err := svc.SaveMood(ctx, "u1", "happy", "got good news")
	require.NoError(t, err)
	assert.Equal(t, model.MoodHappy, r.Mood)
	assert.NotEmpty(t, r.RecordID)

	_, err = svc.SaveMood(ctx, "u1", "ecstatic", "")
	assert.ErrorIs(t, err, model.ErrInvalidMood)

	// The crisis marker is not a mood and never reaches analytics.
	_, err = svc.SaveMood(ctx, "u1", "crisis", "")
	assert.ErrorIs(t, err, model.ErrInvalidMood)

	_, err = svc.SaveMood(ctx, "", "happy", "")
	assert.ErrorIs(t, err, model.ErrValidation)

	lst, err := svc.ListMoods(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lst, 1)
}

func TestMoodService_PatternsEmptyHistory(t *testing.T) {
	svc := NewMoodService(memory.New())

	stats, err := svc.Patterns(context.Background(), "u1", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, float64(model.NeutralScore), stats.WeeklyAverage)
	assert.Equal(t, insights.TrendStable, stats.Trend)
	assert.Nil(t, stats.DominantMood)
	assert.Len(t, stats.DailySeries, 7)
}

func TestJournalService_AddAndList(t *testing.T) {
	svc := NewJournalService(memory.New())
	ctx := context.Background()

	e, err := svc.AddEntry(ctx, "u1", "slept badly but the afternoon improved")
	require.NoError(t, err)
	assert.NotEmpty(t, e.EntryID)

	_, err = svc.AddEntry(ctx, "u1", "  ")
	assert.ErrorIs(t, err, model.ErrValidation)

	lst, err := svc.ListEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lst, 1)
}
