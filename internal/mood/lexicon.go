package mood

import "github.com/mindmate/mindmate-server/internal/model"

// phraseRule binds a multi-word phrase to a mood. The table is scanned
// top to bottom and the first match wins, so position encodes priority;
// treat the ordering as part of the contract.
type phraseRule struct {
	phrase string
	mood   model.Mood
}

var phraseTable = []phraseRule{
	{"passed away", model.MoodSad},
	{"broke up", model.MoodSad},
	{"lost my job", model.MoodSad},
	{"miss them so much", model.MoodSad},
	{"got the job", model.MoodHappy},
	{"got promoted", model.MoodHappy},
	{"passed my exam", model.MoodHappy},
	{"best day ever", model.MoodHappy},
	{"panic attack", model.MoodAnxious},
	{"can't sleep", model.MoodAnxious},
	{"can't stop worrying", model.MoodAnxious},
	{"too much work", model.MoodStressed},
	{"burned out", model.MoodStressed},
	{"burnt out", model.MoodStressed},
	{"at peace", model.MoodCalm},
	{"feeling better", model.MoodCalm},
}

// keywordCategory is one scored mood with its keyword list. Categories
// are scanned in slice order and ties resolve to the earliest category,
// so this ordering is also contractual. Neutral has no keywords: it is
// the sentinel result when nothing scores.
type keywordCategory struct {
	mood     model.Mood
	keywords []string
}

var keywordTable = []keywordCategory{
	{model.MoodHappy, []string{
		"happy", "great", "good", "wonderful", "amazing", "excited", "joy",
		"love", "promotion", "celebrate", "proud", "grateful", "delighted",
	}},
	{model.MoodSad, []string{
		"sad", "down", "depressed", "unhappy", "upset", "cry", "lonely",
		"hurt", "funeral", "grief", "heartbroken", "miserable",
	}},
	{model.MoodAnxious, []string{
		"anxious", "worried", "nervous", "panic", "scared", "afraid",
		"fear", "dread", "uneasy", "interview", "restless",
	}},
	{model.MoodCalm, []string{
		"calm", "peaceful", "relaxed", "serene", "content", "fine", "okay",
		"meditation", "rested", "tranquil",
	}},
	{model.MoodStressed, []string{
		"stressed", "overwhelmed", "pressure", "busy", "exhausted",
		"tired", "burnout", "deadline", "workload", "swamped",
	}},
}
