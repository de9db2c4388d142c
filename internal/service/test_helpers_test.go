package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ItsHariii/bump-cli/internal/api"
	"github.com/ItsHariii/bump-cli/internal/cache"
	"github.com/ItsHariii/bump-cli/internal/db"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/ItsHariii/bump-cli/internal/store"
	"github.com/ItsHariii/bump-cli/internal/syncq"
)

func newTestDB(t *testing.T) *sql.DB {
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
	return sqldb
}

// newTestDeps wires a deps bundle around a memory store and the given API
// base URL. online controls the connectivity signal the services see.
func newTestDeps(t *testing.T, baseURL string, online bool) (*service.Deps, *store.MemStore) {
	t.Helper()
	s := store.NewMemStore()
	client := &api.Client{BaseURL: baseURL}
	queue := &syncq.Queue{Store: s, Dispatch: client}
	return &service.Deps{
		DB:     newTestDB(t),
		Cache:  cache.New(s, nil),
		API:    client,
		Queue:  queue,
		Online: func() bool { return online },
	}, s
}
