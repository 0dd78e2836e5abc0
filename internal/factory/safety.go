package factory

import (
	"fmt"

	"github.com/mindmate/mindmate-server/internal/config"
	"github.com/mindmate/mindmate-server/internal/safety"
)

// NewCrisisDetector builds the crisis detector from the configured phrase
// file, or the compiled-in defaults when no file is set.
func NewCrisisDetector(cfg *config.Config) (*safety.Detector, error) {
	if cfg.CrisisPhrasesPath == "" {
		return safety.NewDefault(), nil
	}
	d, err := safety.NewFromFile(cfg.CrisisPhrasesPath)
	if err != nil {
		return nil, fmt.Errorf("load crisis phrases from %s: %w", cfg.CrisisPhrasesPath, err)
	}
	return d, nil
}
