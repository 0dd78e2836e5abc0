package mood

import (
	"context"
	"strings"

	"github.com/mindmate/mindmate-server/internal/model"
)

// Classifier is the lexicon-based mood classifier. It is total: any input
// yields a valid label and it never errors, which makes it safe as the
// fallback behind the generative-AI detector.
//
// Known limitation: matching is plain substring work with no negation
// handling ("not happy" still scores "happy").
type Classifier struct{}

// NewClassifier returns the lexicon classifier.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify maps text to a mood label.
//
// Phrases win over keywords: the first phrase-table match returns
// immediately. Otherwise each category's keywords are counted over the
// whole text (repeated occurrences count each time); the strictly
// highest count wins, ties resolve to the earliest category in table
// order, and a zero score yields neutral.
func (c *Classifier) Classify(text string) model.Mood {
	if strings.TrimSpace(text) == "" {
		return model.MoodNeutral
	}
	lower := strings.ToLower(text)

	for _, r := range phraseTable {
		if strings.Contains(lower, r.phrase) {
			return r.mood
		}
	}

	best := model.MoodNeutral
	bestCount := 0
	for _, cat := range keywordTable {
		count := 0
		for _, kw := range cat.keywords {
			count += strings.Count(lower, kw)
		}
		if count > bestCount {
			best = cat.mood
			bestCount = count
		}
	}
	return best
}

// DetectMood implements Detector. It cannot fail.
func (c *Classifier) DetectMood(_ context.Context, text string) (model.Mood, error) {
	return c.Classify(text), nil
}
