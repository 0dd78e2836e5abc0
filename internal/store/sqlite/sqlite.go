// Package sqlite is the single-file store used for local development and
// self-hosted installs. Schema is created on open; no external migration
// step is needed.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// Open opens (or creates) a SQLite database at the given path and enables
// WAL journal mode for better read concurrency.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens the database file and ensures the schema exists.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires the store over an existing connection.
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS mood_records (
    record_id  TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    mood       TEXT NOT NULL,
    note       TEXT NOT NULL DEFAULT '',
    timestamp  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_mood_user_ts ON mood_records (user_id, timestamp);

CREATE TABLE IF NOT EXISTS journal_entries (
    entry_id   TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    entry      TEXT NOT NULL,
    timestamp  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_journal_user_ts ON journal_entries (user_id, timestamp);

CREATE TABLE IF NOT EXISTS chat_sessions (
    session_id TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    messages   TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON chat_sessions (user_id, created_at);

CREATE TABLE IF NOT EXISTS check_ins (
    check_in_id   TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    energy        INTEGER NOT NULL,
    sleep_quality INTEGER NOT NULL,
    stress_level  INTEGER NOT NULL,
    timestamp     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_checkins_user_ts ON check_ins (user_id, timestamp);

CREATE TABLE IF NOT EXISTS gratitude_entries (
    entry_id   TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    text       TEXT NOT NULL,
    timestamp  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_gratitude_user_ts ON gratitude_entries (user_id, timestamp);

CREATE TABLE IF NOT EXISTS activity_logs (
    log_id     TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    activity   TEXT NOT NULL,
    timestamp  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activities_user_ts ON activity_logs (user_id, timestamp);
`
	_, err := db.Exec(schema)
	return err
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Moods() store.Moods       { return &moods{db: s.db} }
func (s *sqliteStore) Journal() store.Journal   { return &journal{db: s.db} }
func (s *sqliteStore) Sessions() store.Sessions { return &sessions{db: s.db} }
func (s *sqliteStore) Wellness() store.Wellness { return &wellness{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func defaultTS(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// --- Moods ---

type moods struct{ db *sql.DB }

func (m *moods) Append(ctx context.Context, r *model.MoodRecord) (*model.MoodRecord, error) {
	if !r.Mood.Valid() {
		return nil, model.ErrInvalidMood
	}
	out := *r
	out.RecordID = uuid.New().String()
	out.Timestamp = defaultTS(r.Timestamp)
	_, err := m.db.ExecContext(ctx, `INSERT INTO mood_records (record_id, user_id, mood, note, timestamp) VALUES (?,?,?,?,?)`,
		out.RecordID, out.UserID, string(out.Mood), out.Note, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *moods) ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.MoodRecord, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT record_id, user_id, mood, note, timestamp FROM mood_records
        WHERE user_id = ? AND timestamp > ?
        ORDER BY timestamp ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.MoodRecord
	for rows.Next() {
		var r model.MoodRecord
		var mood string
		if err := rows.Scan(&r.RecordID, &r.UserID, &mood, &r.Note, &r.Timestamp); err != nil {
			return nil, err
		}
		r.Mood = model.Mood(mood)
		out = append(out, &r)
	}
	return out, rows.Err()
}

// --- Journal ---

type journal struct{ db *sql.DB }

func (j *journal) Append(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	out := *e
	out.EntryID = uuid.New().String()
	out.Timestamp = defaultTS(e.Timestamp)
	_, err := j.db.ExecContext(ctx, `INSERT INTO journal_entries (entry_id, user_id, entry, timestamp) VALUES (?,?,?,?)`,
		out.EntryID, out.UserID, out.Entry, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (j *journal) ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT entry_id, user_id, entry, timestamp FROM journal_entries
        WHERE user_id = ? AND timestamp > ?
        ORDER BY timestamp ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.JournalEntry
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.UserID, &e.Entry, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// --- Sessions ---

type sessions struct{ db *sql.DB }

func (s *sessions) Upsert(ctx context.Context, in *model.ChatSession) (*model.ChatSession, error) {
	now := time.Now().UTC()
	msgs, err := json.Marshal(in.Messages)
	if err != nil {
		return nil, err
	}

	if in.SessionID != "" {
		res, err := s.db.ExecContext(ctx, `UPDATE chat_sessions SET messages = ?, updated_at = ? WHERE session_id = ? AND user_id = ?`,
			string(msgs), now, in.SessionID, in.UserID)
		if err != nil {
			return nil, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			return s.get(ctx, in.UserID, in.SessionID)
		}
	}

	out := *in
	if out.SessionID == "" {
		out.SessionID = uuid.New().String()
	}
	out.CreatedAt = now
	out.UpdatedAt = now
	_, err = s.db.ExecContext(ctx, `INSERT INTO chat_sessions (session_id, user_id, messages, created_at, updated_at) VALUES (?,?,?,?,?)`,
		out.SessionID, out.UserID, string(msgs), out.CreatedAt, out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *sessions) get(ctx context.Context, userID, sessionID string) (*model.ChatSession, error) {
	var out model.ChatSession
	var msgs string
	row := s.db.QueryRowContext(ctx, `SELECT session_id, user_id, messages, created_at, updated_at FROM chat_sessions WHERE session_id = ? AND user_id = ?`,
		sessionID, userID)
	if err := row.Scan(&out.SessionID, &out.UserID, &msgs, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(msgs), &out.Messages); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *sessions) ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.ChatSession, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT session_id, user_id, messages, created_at, updated_at FROM chat_sessions
        WHERE user_id = ? AND created_at > ?
        ORDER BY created_at ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.ChatSession
	for rows.Next() {
		var sess model.ChatSession
		var msgs string
		if err := rows.Scan(&sess.SessionID, &sess.UserID, &msgs, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(msgs), &sess.Messages); err != nil {
			return nil, err
		}
		out = append(out, &sess)
	}
	return out, rows.Err()
}

// --- Wellness ---

type wellness struct{ db *sql.DB }

func (w *wellness) AppendCheckIn(ctx context.Context, c *model.CheckIn) (*model.CheckIn, error) {
	out := *c
	out.CheckInID = uuid.New().String()
	out.Timestamp = defaultTS(c.Timestamp)
	_, err := w.db.ExecContext(ctx, `INSERT INTO check_ins (check_in_id, user_id, energy, sleep_quality, stress_level, timestamp) VALUES (?,?,?,?,?,?)`,
		out.CheckInID, out.UserID, out.Energy, out.SleepQuality, out.StressLevel, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wellness) ListCheckIns(ctx context.Context, userID string, since time.Time) ([]*model.CheckIn, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT check_in_id, user_id, energy, sleep_quality, stress_level, timestamp FROM check_ins
        WHERE user_id = ? AND timestamp > ?
        ORDER BY timestamp ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.CheckIn
	for rows.Next() {
		var c model.CheckIn
		if err := rows.Scan(&c.CheckInID, &c.UserID, &c.Energy, &c.SleepQuality, &c.StressLevel, &c.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (w *wellness) AppendGratitude(ctx context.Context, g *model.GratitudeEntry) (*model.GratitudeEntry, error) {
	out := *g
	out.EntryID = uuid.New().String()
	out.Timestamp = defaultTS(g.Timestamp)
	_, err := w.db.ExecContext(ctx, `INSERT INTO gratitude_entries (entry_id, user_id, text, timestamp) VALUES (?,?,?,?)`,
		out.EntryID, out.UserID, out.Text, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wellness) ListGratitude(ctx context.Context, userID string, since time.Time) ([]*model.GratitudeEntry, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT entry_id, user_id, text, timestamp FROM gratitude_entries
        WHERE user_id = ? AND timestamp > ?
        ORDER BY timestamp ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.GratitudeEntry
	for rows.Next() {
		var g model.GratitudeEntry
		if err := rows.Scan(&g.EntryID, &g.UserID, &g.Text, &g.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}

func (w *wellness) AppendActivity(ctx context.Context, a *model.ActivityLog) (*model.ActivityLog, error) {
	out := *a
	out.LogID = uuid.New().String()
	out.Timestamp = defaultTS(a.Timestamp)
	_, err := w.db.ExecContext(ctx, `INSERT INTO activity_logs (log_id, user_id, activity, timestamp) VALUES (?,?,?,?)`,
		out.LogID, out.UserID, out.Activity, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wellness) ListActivities(ctx context.Context, userID string, since time.Time) ([]*model.ActivityLog, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT log_id, user_id, activity, timestamp FROM activity_logs
        WHERE user_id = ? AND timestamp > ?
        ORDER BY timestamp ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.ActivityLog
	for rows.Next() {
		var a model.ActivityLog
		if err := rows.Scan(&a.LogID, &a.UserID, &a.Activity, &a.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
