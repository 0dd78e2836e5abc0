package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/mindmate/mindmate-server/internal/store"
	"github.com/mindmate/mindmate-server/internal/store/storetest"
)

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := New(filepath.Join(t.TempDir(), "mindmate.db"))
		if err != nil {
			t.Fatalf("open sqlite store: %v", err)
		}
		return s
	})
}
