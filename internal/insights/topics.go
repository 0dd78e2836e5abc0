package insights

import (
	"strings"
	"unicode"
)

// maxTopics caps how many representative keywords a text yields.
const maxTopics = 3

// minTokenLen is exclusive: tokens of this length or shorter are dropped
// before counting.
const minTokenLen = 4

// stopWords are discarded before frequency counting. Length filtering
// already removes most function words; this list catches the longer ones.
var stopWords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "again": {}, "their": {},
	"because": {}, "before": {}, "being": {}, "below": {}, "between": {},
	"could": {}, "doing": {}, "during": {}, "every": {}, "having": {},
	"other": {}, "really": {}, "should": {}, "still": {}, "there": {},
	"these": {}, "things": {}, "think": {}, "those": {}, "through": {},
	"today": {}, "under": {}, "until": {}, "where": {}, "which": {},
	"while": {}, "would": {}, "going": {}, "thing": {}, "feeling": {},
}

// ExtractTopics produces up to three representative keywords from text:
// tokenize on word boundaries, drop stop-words and short tokens, rank by
// frequency with first-encountered order breaking ties.
func ExtractTopics(text string) []string {
	tokens := tokenize(text)

	counts := map[string]int{}
	var order []string
	for _, tok := range tokens {
		if len(tok) <= minTokenLen {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	topics := make([]string, 0, maxTopics)
	picked := map[string]bool{}
	for len(topics) < maxTopics {
		best := ""
		bestCount := 0
		for _, tok := range order {
			if picked[tok] {
				continue
			}
			if counts[tok] > bestCount {
				best = tok
				bestCount = counts[tok]
			}
		}
		if best == "" {
			break
		}
		picked[best] = true
		topics = append(topics, best)
	}
	return topics
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
