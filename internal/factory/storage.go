// Package factory constructs configured dependencies for service startup.
package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mindmate/mindmate-server/internal/config"
	storepkg "github.com/mindmate/mindmate-server/internal/store"
	storemem "github.com/mindmate/mindmate-server/internal/store/memory"
	storepg "github.com/mindmate/mindmate-server/internal/store/postgres"
	storesqlite "github.com/mindmate/mindmate-server/internal/store/sqlite"
)

// NewStore returns the store selected by cfg.DBDriver. Postgres applies
// its embedded migrations before returning; sqlite creates its schema on
// open; memory needs no setup.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("MINDMATE_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		st, err := storepg.New(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("store ready")
		return st, nil
	case "sqlite":
		st, err := storesqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store ready")
		return st, nil
	case "memory":
		log.Warn().Msg("using in-memory store, data will not survive restarts")
		return storemem.New(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
