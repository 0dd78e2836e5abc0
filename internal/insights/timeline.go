package insights

import (
	"sort"
	"strconv"
	"time"

	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/mood"
)

// timelineWindowDays restricts timeline input to recent activity.
const timelineWindowDays = 7

// timelineCap limits the emitted timeline to the newest entries.
const timelineCap = 14

// previewRunes is the content preview length before the ellipsis.
const previewRunes = 100

const (
	TimelineChat    = "chat"
	TimelineJournal = "journal"
)

// TimelineItem is one row of the merged chat/journal timeline.
type TimelineItem struct {
	Type    string            `json:"type"`
	Date    time.Time         `json:"date"`
	Mood    model.Mood        `json:"mood"`
	Preview string            `json:"contentPreview"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// BuildTimeline merges chat sessions and journal entries from the last 7
// days into one chronological view. Chat mood comes from the lexicon
// classifier over the session's user-authored text; journal mood is the
// first MoodRecord sharing the entry's calendar day, neutral otherwise.
// Output is ascending by date, capped to the newest 14 items.
func BuildTimeline(
	sessions []*model.ChatSession,
	entries []*model.JournalEntry,
	moods []*model.MoodRecord,
	now time.Time,
) []TimelineItem {
	from := now.AddDate(0, 0, -timelineWindowDays)
	classifier := mood.NewClassifier()

	moodByDay := map[string]model.Mood{}
	for _, r := range moods {
		if _, ok := moodByDay[r.Date()]; !ok {
			moodByDay[r.Date()] = r.Mood
		}
	}

	items := make([]TimelineItem, 0, len(sessions)+len(entries))

	for _, s := range sessions {
		if !inWindow(s.CreatedAt, from, now) {
			continue
		}
		userText := s.UserText()
		items = append(items, TimelineItem{
			Type:    TimelineChat,
			Date:    s.CreatedAt,
			Mood:    classifier.Classify(userText),
			Preview: preview(userText),
			Meta: map[string]string{
				"sessionId":    s.SessionID,
				"messageCount": strconv.Itoa(len(s.Messages)),
			},
		})
	}

	for _, e := range entries {
		if !inWindow(e.Timestamp, from, now) {
			continue
		}
		m, ok := moodByDay[e.Date()]
		if !ok {
			m = model.MoodNeutral
		}
		items = append(items, TimelineItem{
			Type:    TimelineJournal,
			Date:    e.Timestamp,
			Mood:    m,
			Preview: preview(e.Entry),
			Meta:    map[string]string{"entryId": e.EntryID},
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	if len(items) > timelineCap {
		items = items[len(items)-timelineCap:]
	}
	return items
}

// TopicMoodCorrelation builds the topic -> mood -> count table over chat
// sessions from the last 7 days. The caller derives the plurality mood
// for any topic from the counters.
func TopicMoodCorrelation(sessions []*model.ChatSession, now time.Time) map[string]map[model.Mood]int {
	from := now.AddDate(0, 0, -timelineWindowDays)
	classifier := mood.NewClassifier()

	table := map[string]map[model.Mood]int{}
	for _, s := range sessions {
		if !inWindow(s.CreatedAt, from, now) {
			continue
		}
		userText := s.UserText()
		m := classifier.Classify(userText)
		for _, topic := range ExtractTopics(userText) {
			if table[topic] == nil {
				table[topic] = map[model.Mood]int{}
			}
			table[topic][m]++
		}
	}
	return table
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
