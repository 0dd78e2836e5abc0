package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindmate/mindmate-server/internal/insights"
	"github.com/mindmate/mindmate-server/internal/model"
	"github.com/mindmate/mindmate-server/internal/store"
)

// Summarizer produces a short natural-language summary from a prompt.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// InsightsService builds the dashboard view: activity timeline, top
// journal topics, topic/mood correlation and an optional generated
// summary.
type InsightsService struct {
	store          store.Store
	summarizer     Summarizer
	summaryTimeout time.Duration
	log            zerolog.Logger
}

// NewInsightsService wires the service. summarizer may be nil, in which
// case the summary field is always omitted.
func NewInsightsService(s store.Store, summarizer Summarizer, summaryTimeout time.Duration, log zerolog.Logger) *InsightsService {
	return &InsightsService{store: s, summarizer: summarizer, summaryTimeout: summaryTimeout, log: log}
}

// Insights is the dashboard payload for one user.
type Insights struct {
	Timeline    []insights.TimelineItem       `json:"timeline"`
	Topics      []string                      `json:"topics"`
	Correlation map[string]map[model.Mood]int `json:"topicMoodCorrelation"`
	Summary     string                        `json:"summary,omitempty"`
}

// Build assembles the insights for a user as of now. The summary is best
// effort with a bounded timeout; on failure the field is omitted and the
// rest of the payload is unaffected.
func (s *InsightsService) Build(ctx context.Context, userID string, now time.Time) (*Insights, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}

	from := now.AddDate(0, 0, -7)

	sessions, err := s.store.Sessions().ListByUser(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	entries, err := s.store.Journal().ListByUser(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	moods, err := s.store.Moods().ListByUser(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}

	var journalText strings.Builder
	for _, e := range entries {
		journalText.WriteString(e.Entry)
		journalText.WriteString(" ")
	}

	out := &Insights{
		Timeline:    insights.BuildTimeline(sessions, entries, moods, now),
		Topics:      insights.ExtractTopics(journalText.String()),
		Correlation: insights.TopicMoodCorrelation(sessions, now),
	}

	out.Summary = s.summarize(ctx, out)
	return out, nil
}

func (s *InsightsService) summarize(ctx context.Context, in *Insights) string {
	if s.summarizer == nil || len(in.Timeline) == 0 {
		return ""
	}

	to := s.summaryTimeout
	if to <= 0 {
		to = 5 * time.Second
	}
	sumCtx, cancel := context.WithTimeout(ctx, to)
	defer cancel()

	var prompt strings.Builder
	prompt.WriteString("In two or three warm, encouraging sentences, summarize this week for the user. ")
	prompt.WriteString("Recent topics: ")
	if len(in.Topics) > 0 {
		prompt.WriteString(strings.Join(in.Topics, ", "))
	} else {
		prompt.WriteString("none")
	}
	prompt.WriteString(". Recorded moods: ")
	for i, item := range in.Timeline {
		if i > 0 {
			prompt.WriteString(", ")
		}
		prompt.WriteString(string(item.Mood))
	}
	prompt.WriteString(".")

	summary, err := s.summarizer.Summarize(sumCtx, prompt.String())
	if err != nil {
		s.log.Warn().Err(err).Msg("insight summary unavailable")
		return ""
	}
	return summary
}
