// Package postgres is the production store, backed by PostgreSQL through
// the pgx stdlib driver. Schema is managed with embedded migrations.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the embedded schema migrations. Safe to call on
// every startup; an up-to-date schema is a no-op.
func RunMigrations(dsn string) error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	d, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// New opens a connection, applies migrations and returns the store.
func New(dsn string) (store.Store, error) {
	if err := RunMigrations(dsn); err != nil {
		return nil, err
	}
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB constructs the store over an existing connection. Callers are
// responsible for schema setup.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Moods() store.Moods       { return &moods{db: s.db} }
func (s *pgStore) Journal() store.Journal   { return &journal{db: s.db} }
func (s *pgStore) Sessions() store.Sessions { return &sessions{db: s.db} }
func (s *pgStore) Wellness() store.Wellness { return &wellness{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
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
	_, err := m.db.ExecContext(ctx, `
        INSERT INTO mood_records (record_id, user_id, mood, note, timestamp)
        VALUES ($1,$2,$3,$4,$5)`,
		out.RecordID, out.UserID, string(out.Mood), out.Note, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *moods) ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.MoodRecord, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT record_id, user_id, mood, note, timestamp FROM mood_records
        WHERE user_id = $1 AND timestamp > $2
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
	_, err := j.db.ExecContext(ctx, `
        INSERT INTO journal_entries (entry_id, user_id, entry, timestamp)
        VALUES ($1,$2,$3,$4)`,
		out.EntryID, out.UserID, out.Entry, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (j *journal) ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT entry_id, user_id, entry, timestamp FROM journal_entries
        WHERE user_id = $1 AND timestamp > $2
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
		res, err := s.db.ExecContext(ctx, `
            UPDATE chat_sessions SET messages = $1, updated_at = $2
            WHERE session_id = $3 AND user_id = $4`,
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
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO chat_sessions (session_id, user_id, messages, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5)`,
		out.SessionID, out.UserID, string(msgs), out.CreatedAt, out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *sessions) get(ctx context.Context, userID, sessionID string) (*model.ChatSession, error) {
	var out model.ChatSession
	var msgs []byte
	row := s.db.QueryRowContext(ctx, `
        SELECT session_id, user_id, messages, created_at, updated_at
        FROM chat_sessions WHERE session_id = $1 AND user_id = $2`,
		sessionID, userID)
	if err := row.Scan(&out.SessionID, &out.UserID, &msgs, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(msgs, &out.Messages); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *sessions) ListByUser(ctx context.Context, userID string, since time.Time) ([]*model.ChatSession, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT session_id, user_id, messages, created_at, updated_at FROM chat_sessions
        WHERE user_id = $1 AND created_at > $2
        ORDER BY created_at ASC`, userID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.ChatSession
	for rows.Next() {
		var sess model.ChatSession
		var msgs []byte
		if err := rows.Scan(&sess.SessionID, &sess.UserID, &msgs, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(msgs, &sess.Messages); err != nil {
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
	_, err := w.db.ExecContext(ctx, `
        INSERT INTO check_ins (check_in_id, user_id, energy, sleep_quality, stress_level, timestamp)
        VALUES ($1,$2,$3,$4,$5,$6)`,
		out.CheckInID, out.UserID, out.Energy, out.SleepQuality, out.StressLevel, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wellness) ListCheckIns(ctx context.Context, userID string, since time.Time) ([]*model.CheckIn, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT check_in_id, user_id, energy, sleep_quality, stress_level, timestamp FROM check_ins
        WHERE user_id = $1 AND timestamp > $2
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
	_, err := w.db.ExecContext(ctx, `
        INSERT INTO gratitude_entries (entry_id, user_id, text, timestamp)
        VALUES ($1,$2,$3,$4)`,
		out.EntryID, out.UserID, out.Text, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wellness) ListGratitude(ctx context.Context, userID string, since time.Time) ([]*model.GratitudeEntry, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT entry_id, user_id, text, timestamp FROM gratitude_entries
        WHERE user_id = $1 AND timestamp > $2
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
	_, err := w.db.ExecContext(ctx, `
        INSERT INTO activity_logs (log_id, user_id, activity, timestamp)
        VALUES ($1,$2,$3,$4)`,
		out.LogID, out.UserID, out.Activity, out.Timestamp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *wellness) ListActivities(ctx context.Context, userID string, since time.Time) ([]*model.ActivityLog, error) {
	rows, err := w.db.QueryContext(ctx, `
        SELECT log_id, user_id, activity, timestamp FROM activity_logs
        WHERE user_id = $1 AND timestamp > $2
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
