package model

// Mood is one of the six categorical emotion labels used throughout
// storage and analytics.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodNeutral  Mood = "neutral"
	MoodAnxious  Mood = "anxious"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

// CrisisMarker tags a crisis interaction in API payloads. It is never a
// valid MoodRecord value and analytics must skip it.
const CrisisMarker = "crisis"

// Moods lists every valid mood in enumeration order. Ordering is part of
// the contract: tie-breaks across the codebase resolve to the earliest
// entry, so iterate this slice rather than a map.
var Moods = []Mood{MoodHappy, MoodCalm, MoodNeutral, MoodAnxious, MoodSad, MoodStressed}

// moodScores maps each mood to its wellbeing score in [0,100].
var moodScores = map[Mood]float64{
	MoodHappy:    90,
	MoodCalm:     75,
	MoodNeutral:  50,
	MoodAnxious:  30,
	MoodSad:      20,
	MoodStressed: 25,
}

// NeutralScore is the default wellbeing score used for empty windows.
const NeutralScore = 50

// Valid reports whether m is one of the six enum values.
func (m Mood) Valid() bool {
	_, ok := moodScores[m]
	return ok
}

// Score returns the wellbeing score for m. Unknown values score as
// neutral so aggregate math stays total.
func (m Mood) Score() float64 {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return NeutralScore
}

// ParseMood normalizes a free-form label into a Mood. The second return
// is false when the label is outside the six-value set.
func ParseMood(s string) (Mood, bool) {
	m := Mood(s)
	if m.Valid() {
		return m, true
	}
	return MoodNeutral, false
}
