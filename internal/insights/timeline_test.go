package insights

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
)

func session(id string, created time.Time, userText string) *model.ChatSession {
	return &model.ChatSession{
		SessionID: id,
		UserID:    "u1",
		Messages: []model.ChatMessage{
			{Role: model.RoleUser, Content: userText},
			{Role: model.RoleAssistant, Content: "I hear you."},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func journal(id string, ts time.Time, text string) *model.JournalEntry {
	return &model.JournalEntry{EntryID: id, UserID: "u1", Entry: text, Timestamp: ts}
}

func TestBuildTimeline_MergesAndSortsAscending(t *testing.T) {
	sessions := []*model.ChatSession{
		session("s1", testNow.AddDate(0, 0, -1), "worried about my interview"),
	}
	entries := []*model.JournalEntry{
		journal("j1", testNow.AddDate(0, 0, -3), "quiet evening, reading"),
		journal("j2", testNow.AddDate(0, 0, -2), "long walk in the park"),
	}

	items := BuildTimeline(sessions, entries, nil, testNow)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.Before(items[i-1].Date) {
			t.Fatalf("timeline not ascending at index %d", i)
		}
	}
	if items[0].Type != TimelineJournal || items[2].Type != TimelineChat {
		t.Fatalf("unexpected ordering: %s ... %s", items[0].Type, items[2].Type)
	}
}

func TestBuildTimeline_ChatMoodFromUserText(t *testing.T) {
	sessions := []*model.ChatSession{
		session("s1", testNow.AddDate(0, 0, -1), "worried and nervous all week"),
	}
	items := BuildTimeline(sessions, nil, nil, testNow)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Mood != model.MoodAnxious {
		t.Fatalf("chat mood = %s, want anxious", items[0].Mood)
	}
	if items[0].Meta["sessionId"] != "s1" {
		t.Fatalf("missing session metadata: %v", items[0].Meta)
	}
}

func TestBuildTimeline_JournalMoodFromSameDayRecord(t *testing.T) {
	day := testNow.AddDate(0, 0, -2)
	entries := []*model.JournalEntry{journal("j1", day, "day at the office")}
	moods := []*model.MoodRecord{
		{UserID: "u1", Mood: model.MoodStressed, Timestamp: day.Add(2 * time.Hour)},
	}

	items := BuildTimeline(nil, entries, moods, testNow)
	if items[0].Mood != model.MoodStressed {
		t.Fatalf("journal mood = %s, want stressed from same-day record", items[0].Mood)
	}

	// Without a same-day record the mood falls back to neutral.
	items = BuildTimeline(nil, entries, nil, testNow)
	if items[0].Mood != model.MoodNeutral {
		t.Fatalf("journal mood = %s, want neutral fallback", items[0].Mood)
	}
}

func TestBuildTimeline_WindowAndCap(t *testing.T) {
	var entries []*model.JournalEntry
	// One stale entry outside the 7-day window.
	entries = append(entries, journal("old", testNow.AddDate(0, 0, -10), "ancient history"))
	// 20 in-window entries spread over recent hours.
	for i := 0; i < 20; i++ {
		entries = append(entries, journal(
			fmt.Sprintf("j%02d", i),
			testNow.Add(-time.Duration(i+1)*time.Hour),
			fmt.Sprintf("entry number %d", i),
		))
	}

	items := BuildTimeline(nil, entries, nil, testNow)
	if len(items) != timelineCap {
		t.Fatalf("got %d items, want cap %d", len(items), timelineCap)
	}
	// The cap keeps the newest items: the most recent entry survives.
	last := items[len(items)-1]
	if last.Meta["entryId"] != "j00" {
		t.Fatalf("newest entry missing after cap, last = %v", last.Meta)
	}
	for _, it := range items {
		if it.Meta["entryId"] == "old" {
			t.Fatalf("stale entry leaked into the 7-day window")
		}
	}
}

func TestBuildTimeline_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("reflection ", 30)
	entries := []*model.JournalEntry{journal("j1", testNow.Add(-time.Hour), long)}

	items := BuildTimeline(nil, entries, nil, testNow)
	p := items[0].Preview
	if !strings.HasSuffix(p, "...") {
		t.Fatalf("long preview must be ellipsis-suffixed: %q", p)
	}
	if got := len([]rune(strings.TrimSuffix(p, "..."))); got != 100 {
		t.Fatalf("preview length = %d runes, want 100", got)
	}
}

func TestTopicMoodCorrelation(t *testing.T) {
	sessions := []*model.ChatSession{
		session("s1", testNow.Add(-2*time.Hour), "deadline pressure at work, another deadline"),
		session("s2", testNow.Add(-1*time.Hour), "deadline again, feeling exhausted"),
		session("s3", testNow.AddDate(0, 0, -10), "deadline from long ago"),
	}

	table := TopicMoodCorrelation(sessions, testNow)
	got := table["deadline"][model.MoodStressed]
	if got != 2 {
		t.Fatalf("deadline/stressed count = %d, want 2 (stale session excluded)", got)
	}
}

func TestBuildTimeline_EmptyInput(t *testing.T) {
	items := BuildTimeline(nil, nil, nil, testNow)
	if len(items) != 0 {
		t.Fatalf("got %d items for empty input, want 0", len(items))
	}
}
