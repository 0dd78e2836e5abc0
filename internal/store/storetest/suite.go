package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store and return it
// from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Moods: appends get ids, lists come back ascending by timestamp.
	for i, mood := range []model.Mood{model.MoodSad, model.MoodHappy, model.MoodCalm} {
		r, err := s.Moods().Append(ctx, &model.MoodRecord{
			UserID:    userID,
			Mood:      mood,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("AppendMood %d: %v", i, err)
		}
		if r.RecordID == "" {
			t.Fatalf("AppendMood %d: empty record id", i)
		}
	}
	lst, err := s.Moods().ListByUser(ctx, userID, time.Time{})
	if err != nil || len(lst) != 3 {
		t.Fatalf("ListMoods: n=%d err=%v", len(lst), err)
	}
	for i := 1; i < len(lst); i++ {
		if lst[i].Timestamp.Before(lst[i-1].Timestamp) {
			t.Fatalf("ListMoods: not ascending at %d", i)
		}
	}

	// Since filter is exclusive of the boundary timestamp.
	since, err := s.Moods().ListByUser(ctx, userID, base)
	if err != nil || len(since) != 2 {
		t.Fatalf("ListMoods since: n=%d err=%v", len(since), err)
	}

	// Out-of-enum moods are rejected at the write boundary.
	if _, err := s.Moods().Append(ctx, &model.MoodRecord{UserID: userID, Mood: model.Mood("euphoric")}); !errors.Is(err, model.ErrInvalidMood) {
		t.Fatalf("AppendMood invalid: want ErrInvalidMood, got %v", err)
	}

	// A record without a timestamp gets one assigned.
	stamped, err := s.Moods().Append(ctx, &model.MoodRecord{UserID: "u-" + uuid.New().String(), Mood: model.MoodNeutral})
	if err != nil || stamped.Timestamp.IsZero() {
		t.Fatalf("AppendMood default ts: ts=%v err=%v", stamped.Timestamp, err)
	}

	// Journal
	e, err := s.Journal().Append(ctx, &model.JournalEntry{UserID: userID, Entry: "slept well", Timestamp: base})
	if err != nil || e.EntryID == "" {
		t.Fatalf("AppendJournal: id=%q err=%v", e.EntryID, err)
	}
	if jl, err := s.Journal().ListByUser(ctx, userID, time.Time{}); err != nil || len(jl) != 1 || jl[0].Entry != "slept well" {
		t.Fatalf("ListJournal: n=%d err=%v", len(jl), err)
	}

	// Sessions: empty id creates, known id replaces messages.
	sess, err := s.Sessions().Upsert(ctx, &model.ChatSession{
		UserID:   userID,
		Messages: []model.ChatMessage{{Role: model.RoleUser, Content: "hi"}},
	})
	if err != nil || sess.SessionID == "" {
		t.Fatalf("UpsertSession create: id=%q err=%v", sess.SessionID, err)
	}
	updated, err := s.Sessions().Upsert(ctx, &model.ChatSession{
		SessionID: sess.SessionID,
		UserID:    userID,
		Messages: []model.ChatMessage{
			{Role: model.RoleUser, Content: "hi"},
			{Role: model.RoleAssistant, Content: "hello, how are you feeling today?"},
		},
	})
	if err != nil {
		t.Fatalf("UpsertSession update: %v", err)
	}
	if updated.SessionID != sess.SessionID || len(updated.Messages) != 2 {
		t.Fatalf("UpsertSession update: id=%q msgs=%d", updated.SessionID, len(updated.Messages))
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Fatalf("UpsertSession update: UpdatedAt %v before CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}
	sl, err := s.Sessions().ListByUser(ctx, userID, time.Time{})
	if err != nil || len(sl) != 1 {
		t.Fatalf("ListSessions: n=%d err=%v", len(sl), err)
	}
	if len(sl[0].Messages) != 2 {
		t.Fatalf("ListSessions: messages not replaced, n=%d", len(sl[0].Messages))
	}

	// Wellness
	ci, err := s.Wellness().AppendCheckIn(ctx, &model.CheckIn{UserID: userID, Energy: 7, SleepQuality: 6, StressLevel: 3, Timestamp: base})
	if err != nil || ci.CheckInID == "" {
		t.Fatalf("AppendCheckIn: id=%q err=%v", ci.CheckInID, err)
	}
	if cl, err := s.Wellness().ListCheckIns(ctx, userID, time.Time{}); err != nil || len(cl) != 1 || cl[0].Energy != 7 {
		t.Fatalf("ListCheckIns: n=%d err=%v", len(cl), err)
	}

	g, err := s.Wellness().AppendGratitude(ctx, &model.GratitudeEntry{UserID: userID, Text: "sunny morning", Timestamp: base})
	if err != nil || g.EntryID == "" {
		t.Fatalf("AppendGratitude: id=%q err=%v", g.EntryID, err)
	}
	if gl, err := s.Wellness().ListGratitude(ctx, userID, time.Time{}); err != nil || len(gl) != 1 || gl[0].Text != "sunny morning" {
		t.Fatalf("ListGratitude: n=%d err=%v", len(gl), err)
	}

	a, err := s.Wellness().AppendActivity(ctx, &model.ActivityLog{UserID: userID, Activity: "walk", Timestamp: base})
	if err != nil || a.LogID == "" {
		t.Fatalf("AppendActivity: id=%q err=%v", a.LogID, err)
	}
	if al, err := s.Wellness().ListActivities(ctx, userID, time.Time{}); err != nil || len(al) != 1 || al[0].Activity != "walk" {
		t.Fatalf("ListActivities: n=%d err=%v", len(al), err)
	}

	// Users are isolated from each other.
	if other, err := s.Moods().ListByUser(ctx, "u-"+uuid.New().String(), time.Time{}); err != nil || len(other) != 0 {
		t.Fatalf("ListMoods other user: n=%d err=%v", len(other), err)
	}
}
