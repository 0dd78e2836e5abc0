// Package store defines the persistence boundary. Records are
// append-only: nothing here updates or deletes, with the single
// exception of chat-session upserts (messages replaced, updatedAt
// refreshed). Implementations live under internal/store/<driver>/.
package store

import (
	"context"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
)

// Store exposes persistence operations required by services.
type Store interface {
	Moods() Moods
	Journal() Journal
	Sessions() Sessions
	Wellness() Wellness
}

// Moods persists MoodRecords. Append validates the mood enum; the write
// boundary is the only place out-of-enum values can be rejected.
type Moods interface {
	Append(ctx context.Context, r *model.MoodRecord) (*model.MoodRecord, error)
	// ListByUser returns the user's records ascending by timestamp.
	// A zero since means all history.
	ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.MoodRecord, error)
}

type Journal interface {
	Append(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.JournalEntry, error)
}

// Sessions persists chat sessions. Upsert with a known SessionID
// replaces the stored messages and refreshes UpdatedAt; an empty or
// unknown id creates a new session.
type Sessions interface {
	Upsert(ctx context.Context, s *model.ChatSession) (*model.ChatSession, error)
	ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.ChatSession, error)
}

type Wellness interface {
	AppendCheckIn(ctx context.Context, c *model.CheckIn) (*model.CheckIn, error)
	ListCheckIns(ctx context.Context, userID string, since time.Time) ([]*model.CheckIn, error)

	AppendGratitude(ctx context.Context, g *model.GratitudeEntry) (*model.GratitudeEntry, error)
	ListGratitude(ctx context.Context, userID string, since time.Time) ([]*model.GratitudeEntry, error)

	AppendActivity(ctx context.Context, a *model.ActivityLog) (*model.ActivityLog, error)
	ListActivities(ctx context.Context, userID string, since time.Time) ([]*model.ActivityLog, error)
}
