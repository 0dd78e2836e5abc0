package postgres

import (
	"os"
	"testing"

	"github.com/mindmate/mindmate-server/internal/store"
	"github.com/mindmate/mindmate-server/internal/store/storetest"
)

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	dsn := os.Getenv("MINDMATE_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("MINDMATE_POSTGRES_DSN not set; skipping postgres store integration test")
	}
	if err := RunMigrations(dsn); err != nil {
		t.Fatalf("postgres migrations: %v", err)
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	return NewWithDB(db)
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}
