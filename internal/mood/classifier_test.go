package mood

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindmate/mindmate-server/internal/model"
)

func TestClassify_EmptyIsNeutral(t *testing.T) {
	c := NewClassifier()
	if got := c.Classify(""); got != model.MoodNeutral {
		t.Fatalf("Classify(\"\") = %s, want neutral", got)
	}
	if got := c.Classify("   \n\t"); got != model.MoodNeutral {
		t.Fatalf("Classify(whitespace) = %s, want neutral", got)
	}
}

func TestClassify_PhrasePriority(t *testing.T) {
	c := NewClassifier()
	// "passed away" must win even when happy keywords outnumber sad ones.
	text := "My grandmother passed away but everyone was happy, grateful and full of love at the service"
	if got := c.Classify(text); got != model.MoodSad {
		t.Fatalf("Classify(%q) = %s, want sad (phrase priority)", text, got)
	}
	if got := c.Classify("I finally got the job after months of trying"); got != model.MoodHappy {
		t.Fatalf("got the job: got %s, want happy", got)
	}
}

func TestClassify_KeywordDominance(t *testing.T) {
	c := NewClassifier()
	if got := c.Classify("I am so happy and excited"); got != model.MoodHappy {
		t.Fatalf("got %s, want happy", got)
	}
	if got := c.Classify("deadline after deadline, totally overwhelmed and exhausted"); got != model.MoodStressed {
		t.Fatalf("got %s, want stressed", got)
	}
}

func TestClassify_RepeatedOccurrencesCount(t *testing.T) {
	c := NewClassifier()
	// One sad keyword repeated three times must beat two distinct calm
	// keywords: occurrences count each time, not once per keyword.
	text := "cry and cry and cry, though the evening was calm and peaceful"
	if got := c.Classify(text); got != model.MoodSad {
		t.Fatalf("got %s, want sad (occurrence counting)", got)
	}
}

func TestClassify_TieBreaksToEarlierCategory(t *testing.T) {
	c := NewClassifier()
	// One happy keyword, one stressed keyword: happy is defined first.
	text := "a wonderful morning then a swamped afternoon"
	if got := c.Classify(text); got != model.MoodHappy {
		t.Fatalf("got %s, want happy (tie-break by category order)", got)
	}
}

func TestClassify_NoNegationHandling(t *testing.T) {
	c := NewClassifier()
	// Documented limitation: "not happy" still scores happy.
	if got := c.Classify("I am not happy"); got != model.MoodHappy {
		t.Fatalf("got %s, want happy (negation is not handled)", got)
	}
}

func TestClassify_Totality(t *testing.T) {
	c := NewClassifier()
	inputs := []string{
		"",
		"zzzzz qqqq xyzzy",
		strings.Repeat("panic ", 1000),
		"ÄÖÜ 漢字 🙂🙂🙂",
		"happy sad anxious calm stressed all at once",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if !got.Valid() {
			t.Fatalf("Classify(%q) = %q, outside the six-label set", in, got)
		}
	}
}

type stubDetector struct {
	mood  model.Mood
	err   error
	delay time.Duration
}

func (s *stubDetector) DetectMood(ctx context.Context, _ string) (model.Mood, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.mood, s.err
}

func TestFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	f := NewFallback(&stubDetector{mood: model.MoodCalm}, NewClassifier(), time.Second, zerolog.Nop())
	got, err := f.DetectMood(context.Background(), "I am so happy")
	if err != nil {
		t.Fatalf("DetectMood: %v", err)
	}
	if got != model.MoodCalm {
		t.Fatalf("got %s, want primary's calm", got)
	}
}

func TestFallback_SubstitutesOnError(t *testing.T) {
	f := NewFallback(&stubDetector{err: errors.New("upstream down")}, NewClassifier(), time.Second, zerolog.Nop())
	got, err := f.DetectMood(context.Background(), "I am so happy and excited")
	if err != nil {
		t.Fatalf("DetectMood: %v", err)
	}
	if got != model.MoodHappy {
		t.Fatalf("got %s, want lexicon's happy", got)
	}
}

func TestFallback_SubstitutesOnOutOfVocabulary(t *testing.T) {
	f := NewFallback(&stubDetector{mood: model.Mood("euphoric")}, NewClassifier(), time.Second, zerolog.Nop())
	got, err := f.DetectMood(context.Background(), "worried and nervous about tomorrow")
	if err != nil {
		t.Fatalf("DetectMood: %v", err)
	}
	if got != model.MoodAnxious {
		t.Fatalf("got %s, want lexicon's anxious", got)
	}
}

func TestFallback_SubstitutesOnTimeout(t *testing.T) {
	slow := &stubDetector{mood: model.MoodCalm, delay: 200 * time.Millisecond}
	f := NewFallback(slow, NewClassifier(), 10*time.Millisecond, zerolog.Nop())
	got, err := f.DetectMood(context.Background(), "cry cry cry")
	if err != nil {
		t.Fatalf("DetectMood: %v", err)
	}
	if got != model.MoodSad {
		t.Fatalf("got %s, want lexicon's sad after timeout", got)
	}
}
