package model

import "time"

// MoodRecord is an immutable, append-only record of how a user felt at a
// point in time. Created on explicit submission or as a side effect of
// chat mood detection.
type MoodRecord struct {
	RecordID  string    `json:"recordId"`
	UserID    string    `json:"userId"`
	Mood      Mood      `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Date returns the calendar day the record belongs to.
func (r *MoodRecord) Date() string {
	return r.Timestamp.Format("2006-01-02")
}

// JournalEntry is an immutable free-text journal note.
type JournalEntry struct {
	EntryID   string    `json:"entryId"`
	UserID    string    `json:"userId"`
	Entry     string    `json:"entry"`
	Timestamp time.Time `json:"timestamp"`
}

// Date returns the calendar day the entry belongs to.
func (e *JournalEntry) Date() string {
	return e.Timestamp.Format("2006-01-02")
}

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatSession holds an ordered conversation between a user and the
// companion. Saving with a known SessionID replaces the message list and
// refreshes UpdatedAt; an unknown or empty id creates a new session.
type ChatSession struct {
	SessionID string        `json:"sessionId"`
	UserID    string        `json:"userId"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// UserText concatenates the user-authored turns, separated by spaces.
// Mood classification of a session runs over this text only.
func (s *ChatSession) UserText() string {
	var out string
	for _, m := range s.Messages {
		if m.Role != RoleUser {
			continue
		}
		if out != "" {
			out += " "
		}
		out += m.Content
	}
	return out
}

// CheckIn is a daily wellness check-in with 1-10 self ratings.
type CheckIn struct {
	CheckInID    string    `json:"checkInId"`
	UserID       string    `json:"userId"`
	Energy       int       `json:"energy"`
	SleepQuality int       `json:"sleepQuality"`
	StressLevel  int       `json:"stressLevel"`
	Timestamp    time.Time `json:"timestamp"`
}

// GratitudeEntry is a short note of something the user is grateful for.
type GratitudeEntry struct {
	EntryID   string    `json:"entryId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityLog records a completed wellness activity (walk, meditation...).
type ActivityLog struct {
	LogID     string    `json:"logId"`
	UserID    string    `json:"userId"`
	Activity  string    `json:"activity"`
	Timestamp time.Time `json:"timestamp"`
}
