package mood

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindmate/mindmate-server/internal/model"
)

// Fallback composes a primary detector (typically the generative-AI one)
// with the lexicon classifier. The primary gets a bounded timeout; on
// error, timeout, or an out-of-vocabulary label the lexicon result is
// substituted. The composed detector is total.
type Fallback struct {
	primary  Detector
	fallback *Classifier
	timeout  time.Duration
	log      zerolog.Logger
}

// NewFallback builds the composed detector. A zero timeout disables the
// per-call deadline on the primary.
func NewFallback(primary Detector, fallback *Classifier, timeout time.Duration, log zerolog.Logger) *Fallback {
	return &Fallback{primary: primary, fallback: fallback, timeout: timeout, log: log}
}

// DetectMood implements Detector and never returns an error.
func (f *Fallback) DetectMood(ctx context.Context, text string) (model.Mood, error) {
	if f.primary != nil {
		callCtx := ctx
		if f.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, f.timeout)
			defer cancel()
		}
		m, err := f.primary.DetectMood(callCtx, text)
		if err == nil && m.Valid() {
			return m, nil
		}
		if err != nil {
			f.log.Warn().Err(err).Msg("primary mood detector failed, using lexicon fallback")
		} else {
			f.log.Warn().Str("label", string(m)).Msg("primary mood detector returned out-of-vocabulary label, using lexicon fallback")
		}
	}
	return f.fallback.Classify(text), nil
}
