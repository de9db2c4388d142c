package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/service"
)

func intPtr(v int) *int { return &v }

func TestAddJournalEntryOnline(t *testing.T) {
	t.Parallel()
	var posts int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/journal/entries" {
			posts++
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "e1", "entry_date": "2026-03-01"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	deps, _ := newTestDeps(t, ts.URL, true)
	queued, err := service.AddJournalEntry(context.Background(), deps, model.JournalEntryInput{
		EntryDate: "2026-03-01",
		Mood:      intPtr(4),
		Notes:     "slept well",
	})
	if err != nil {
		t.Fatalf("add journal entry: %v", err)
	}
	if queued || posts != 1 {
		t.Fatalf("expected direct POST, queued=%v posts=%d", queued, posts)
	}
}

func TestAddJournalEntryOfflineQueues(t *testing.T) {
	t.Parallel()
	deps, _ := newTestDeps(t, "http://127.0.0.1:0", false)

	queued, err := service.AddJournalEntry(context.Background(), deps, model.JournalEntryInput{
		EntryDate: "2026-03-01",
		Symptoms:  []string{"fatigue"},
	})
	if err != nil {
		t.Fatalf("add journal entry offline: %v", err)
	}
	if !queued {
		t.Fatal("offline journal write must queue")
	}
	pending, _ := deps.Queue.Pending()
	if len(pending) != 1 || pending[0].Endpoint != "/journal/entries" {
		t.Fatalf("unexpected queued action: %+v", pending)
	}
}

func TestJournalEntryValidation(t *testing.T) {
	t.Parallel()
	deps, _ := newTestDeps(t, "http://127.0.0.1:0", false)
	ctx := context.Background()

	if _, err := service.AddJournalEntry(ctx, deps, model.JournalEntryInput{EntryDate: "bad"}); err == nil {
		t.Fatal("expected invalid entry date to be rejected")
	}
	if _, err := service.AddJournalEntry(ctx, deps, model.JournalEntryInput{
		EntryDate: "2026-03-01",
		Mood:      intPtr(6),
	}); err == nil {
		t.Fatal("expected out-of-range mood to be rejected")
	}
	if _, err := service.UpdateJournalEntry(ctx, deps, "", model.JournalEntryInput{}); err == nil {
		t.Fatal("expected missing entry id to be rejected")
	}
}
