package store_test

import (
	"path/filepath"
	"testing"

	"github.com/ItsHariii/bump-cli/internal/db"
	"github.com/ItsHariii/bump-cli/internal/store"
)

func newSQLStore(t *testing.T) *store.SQLStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bump.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return store.NewSQLStore(sqldb)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	stores := map[string]store.Store{
		"sql": newSQLStore(t),
		"mem": store.NewMemStore(),
	}
	for name, s := range stores {
		if _, ok, err := s.Get("missing"); err != nil || ok {
			t.Fatalf("%s: expected clean miss, got ok=%v err=%v", name, ok, err)
		}
		if err := s.Set("k", `{"a":1}`); err != nil {
			t.Fatalf("%s: set: %v", name, err)
		}
		value, ok, err := s.Get("k")
		if err != nil || !ok || value != `{"a":1}` {
			t.Fatalf("%s: expected stored value back, got %q ok=%v err=%v", name, value, ok, err)
		}
		if err := s.Set("k", "v2"); err != nil {
			t.Fatalf("%s: overwrite: %v", name, err)
		}
		if value, _, _ := s.Get("k"); value != "v2" {
			t.Fatalf("%s: expected overwrite to win, got %q", name, value)
		}
		if err := s.Remove("k"); err != nil {
			t.Fatalf("%s: remove: %v", name, err)
		}
		if _, ok, _ := s.Get("k"); ok {
			t.Fatalf("%s: expected key to be gone after remove", name)
		}
	}
}

func TestSQLStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()
	s := newSQLStore(t)
	if err := s.Set("", "v"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, _, err := s.Get("  "); err == nil {
		t.Fatal("expected error for blank key")
	}
}
