// Package safety implements the crisis phrase detector. It is a blunt
// safety net, not a classifier: a case-insensitive substring scan over an
// ordered phrase list, checked before any other processing of user text.
package safety

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// defaultPhrases is the compiled-in high-risk phrase list. Ordering is
// stable but has no semantic weight; the first match short-circuits.
var defaultPhrases = []string{
	"kill myself",
	"end my life",
	"want to die",
	"suicide",
	"suicidal",
	"self harm",
	"self-harm",
	"hurt myself",
	"cut myself",
	"better off dead",
	"no reason to live",
	"no point in living",
	"end it all",
	"can't go on",
	"don't want to be here anymore",
	"everyone would be better without me",
}

// Detector scans text for crisis phrases.
type Detector struct {
	phrases []string
}

// New builds a Detector from the given phrase list. An empty list is a
// configuration error: the detector would silently pass every input.
func New(phrases []string) (*Detector, error) {
	if len(phrases) == 0 {
		return nil, fmt.Errorf("crisis phrase list is empty")
	}
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	if len(lowered) == 0 {
		return nil, fmt.Errorf("crisis phrase list is empty")
	}
	return &Detector{phrases: lowered}, nil
}

// NewDefault builds a Detector with the compiled-in phrase list.
func NewDefault() *Detector {
	d, err := New(defaultPhrases)
	if err != nil {
		// The compiled-in list is non-empty; this cannot happen.
		panic(err)
	}
	return d
}

// NewFromFile loads one phrase per line from path. Blank lines and lines
// starting with '#' are skipped. Extending the list is a config change,
// not a code change.
func NewFromFile(path string) (*Detector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crisis phrase list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var phrases []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read crisis phrase list: %w", err)
	}
	return New(phrases)
}

// Detect reports whether text contains any configured crisis phrase.
// Pure string scan; cannot fail. Returns true on first match.
func (d *Detector) Detect(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range d.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// SafetyMessage is the fixed, non-personalized response returned when a
// crisis phrase is detected. It always names a phone hotline, a text
// line, and emergency services.
const SafetyMessage = "I'm really glad you reached out, and I'm concerned about what you're going through. " +
	"You don't have to face this alone. Please consider talking to someone right now: " +
	"call or text 988 (Suicide & Crisis Lifeline, 24/7), or text HOME to 741741 (Crisis Text Line). " +
	"If you are in immediate danger, please call 911 or your local emergency services."
