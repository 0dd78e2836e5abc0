// Package memory is the volatile in-memory store. It mirrors the shape
// the product originally shipped with (per-process arrays lost on
// restart) behind the same interface as the durable drivers, which keeps
// the analytics and services testable without a database. A single
// RWMutex serializes writers; readers always observe fully appended
// records.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// New constructs an empty in-memory store.
func New() store.Store {
	return &memStore{
		moods:      map[string][]*model.MoodRecord{},
		journal:    map[string][]*model.JournalEntry{},
		sessions:   map[string][]*model.ChatSession{},
		checkins:   map[string][]*model.CheckIn{},
		gratitude:  map[string][]*model.GratitudeEntry{},
		activities: map[string][]*model.ActivityLog{},
	}
}

type memStore struct {
	mu         sync.RWMutex
	moods      map[string][]*model.MoodRecord
	journal    map[string][]*model.JournalEntry
	sessions   map[string][]*model.ChatSession
	checkins   map[string][]*model.CheckIn
	gratitude  map[string][]*model.GratitudeEntry
	activities map[string][]*model.ActivityLog
}

func (s *memStore) Moods() store.Moods       { return &moods{s} }
func (s *memStore) Journal() store.Journal   { return &journal{s} }
func (s *memStore) Sessions() store.Sessions { return &sessions{s} }
func (s *memStore) Wellness() store.Wellness { return &wellness{s} }

// --- Moods ---

type moods struct{ p *memStore }

func (m *moods) Append(_ context.Context, r *model.MoodRecord) (*model.MoodRecord, error) {
	if !r.Mood.Valid() {
		return nil, model.ErrInvalidMood
	}
	out := *r
	out.RecordID = uuid.New().String()
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}

	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	m.p.moods[out.UserID] = append(m.p.moods[out.UserID], &out)
	return &out, nil
}

func (m *moods) ListByUser(_ context.Context, userID string, since time.Time) ([]*model.MoodRecord, error) {
	m.p.mu.RLock()
	defer m.p.mu.RUnlock()

	var out []*model.MoodRecord
	for _, r := range m.p.moods[userID] {
		if since.IsZero() || r.Timestamp.After(since) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

// --- Journal ---

type journal struct{ p *memStore }

func (j *journal) Append(_ context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	out := *e
	out.EntryID = uuid.New().String()
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}

	j.p.mu.Lock()
	defer j.p.mu.Unlock()
	j.p.journal[out.UserID] = append(j.p.journal[out.UserID], &out)
	return &out, nil
}

func (j *journal) ListByUser(_ context.Context, userID string, since time.Time) ([]*model.JournalEntry, error) {
	j.p.mu.RLock()
	defer j.p.mu.RUnlock()

	var out []*model.JournalEntry
	for _, e := range j.p.journal[userID] {
		if since.IsZero() || e.Timestamp.After(since) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j2 int) bool { return out[i].Timestamp.Before(out[j2].Timestamp) })
	return out, nil
}

// --- Sessions ---

type sessions struct{ p *memStore }

func (s *sessions) Upsert(_ context.Context, in *model.ChatSession) (*model.ChatSession, error) {
	now := time.Now().UTC()

	s.p.mu.Lock()
	defer s.p.mu.Unlock()

	if in.SessionID != "" {
		for _, existing := range s.p.sessions[in.UserID] {
			if existing.SessionID == in.SessionID {
				existing.Messages = append([]model.ChatMessage(nil), in.Messages...)
				existing.UpdatedAt = now
				cp := *existing
				return &cp, nil
			}
		}
	}

	out := *in
	if out.SessionID == "" {
		out.SessionID = uuid.New().String()
	}
	out.Messages = append([]model.ChatMessage(nil), in.Messages...)
	out.CreatedAt = now
	out.UpdatedAt = now
	s.p.sessions[out.UserID] = append(s.p.sessions[out.UserID], &out)
	cp := out
	return &cp, nil
}

func (s *sessions) ListByUser(_ context.Context, userID string, since time.Time) ([]*model.ChatSession, error) {
	s.p.mu.RLock()
	defer s.p.mu.RUnlock()

	var out []*model.ChatSession
	for _, sess := range s.p.sessions[userID] {
		if since.IsZero() || sess.CreatedAt.After(since) {
			cp := *sess
			cp.Messages = append([]model.ChatMessage(nil), sess.Messages...)
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// --- Wellness ---

type wellness struct{ p *memStore }

func (w *wellness) AppendCheckIn(_ context.Context, c *model.CheckIn) (*model.CheckIn, error) {
	out := *c
	out.CheckInID = uuid.New().String()
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}

	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.checkins[out.UserID] = append(w.p.checkins[out.UserID], &out)
	return &out, nil
}

func (w *wellness) ListCheckIns(_ context.Context, userID string, since time.Time) ([]*model.CheckIn, error) {
	w.p.mu.RLock()
	defer w.p.mu.RUnlock()

	var out []*model.CheckIn
	for _, c := range w.p.checkins[userID] {
		if since.IsZero() || c.Timestamp.After(since) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (w *wellness) AppendGratitude(_ context.Context, g *model.GratitudeEntry) (*model.GratitudeEntry, error) {
	out := *g
	out.EntryID = uuid.New().String()
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}

	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.gratitude[out.UserID] = append(w.p.gratitude[out.UserID], &out)
	return &out, nil
}

func (w *wellness) ListGratitude(_ context.Context, userID string, since time.Time) ([]*model.GratitudeEntry, error) {
	w.p.mu.RLock()
	defer w.p.mu.RUnlock()

	var out []*model.GratitudeEntry
	for _, g := range w.p.gratitude[userID] {
		if since.IsZero() || g.Timestamp.After(since) {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (w *wellness) AppendActivity(_ context.Context, a *model.ActivityLog) (*model.ActivityLog, error) {
	out := *a
	out.LogID = uuid.New().String()
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now().UTC()
	}

	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.activities[out.UserID] = append(w.p.activities[out.UserID], &out)
	return &out, nil
}

func (w *wellness) ListActivities(_ context.Context, userID string, since time.Time) ([]*model.ActivityLog, error) {
	w.p.mu.RLock()
	defer w.p.mu.RUnlock()

	var out []*model.ActivityLog
	for _, a := range w.p.activities[userID] {
		if since.IsZero() || a.Timestamp.After(since) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
