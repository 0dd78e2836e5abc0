package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store/memory"
)

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	return f.summary, f.err
}

func TestInsightsService_Build(t *testing.T) {
	st := memory.New()
	svc := NewInsightsService(st, &fakeSummarizer{summary: "A steady week with some anxious moments."}, time.Second, zerolog.Nop())
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := st.Journal().Append(ctx, &model.JournalEntry{
		UserID:    "u1",
		Entry:     "therapy helped today. therapy and running keep me grounded",
		Timestamp: now.AddDate(0, 0, -1),
	})
	require.NoError(t, err)

	_, err = st.Sessions().Upsert(ctx, &model.ChatSession{
		UserID: "u1",
		Messages: []model.ChatMessage{
			{Role: model.RoleUser, Content: "the deadline pressure is getting to me"},
			{Role: model.RoleAssistant, Content: "That sounds like a lot."},
		},
	})
	require.NoError(t, err)

	out, err := svc.Build(ctx, "u1", time.Now().UTC())
	require.NoError(t, err)

	require.Len(t, out.Timeline, 2)
	assert.Equal(t, "therapy", out.Topics[0])
	assert.NotEmpty(t, out.Correlation)
	assert.Equal(t, "A steady week with some anxious moments.", out.Summary)
}

func TestInsightsService_SummaryFailureOmitsField(t *testing.T) {
	st := memory.New()
	svc := NewInsightsService(st, &fakeSummarizer{err: errors.New("backend down")}, time.Second, zerolog.Nop())
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := st.Journal().Append(ctx, &model.JournalEntry{UserID: "u1", Entry: "quiet evening reading", Timestamp: now.AddDate(0, 0, -1)})
	require.NoError(t, err)

	out, err := svc.Build(ctx, "u1", now)
	require.NoError(t, err)
	assert.Empty(t, out.Summary)
	assert.Len(t, out.Timeline, 1)
}

func TestInsightsService_NilSummarizer(t *testing.T) {
	st := memory.New()
	svc := NewInsightsService(st, nil, time.Second, zerolog.Nop())

	out, err := svc.Build(context.Background(), "u1", time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, out.Summary)
	assert.Empty(t, out.Timeline)
}
