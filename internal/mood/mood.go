// Package mood turns free text into one of the six mood labels.
//
// Two detector variants exist: the generative-AI detector in internal/genai
// and the lexicon classifier here. Fallback composes them so callers always
// get a valid label even when the AI collaborator is down.
package mood

import (
	"context"

	"github.com/mindmate/mindmate-server/internal/model"
)

// Detector maps text to a mood label. Implementations may fail (e.g. a
// remote model call); compose with Fallback to obtain a total detector.
type Detector interface {
	DetectMood(ctx context.Context, text string) (model.Mood, error)
}
