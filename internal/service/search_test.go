package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ItsHariii/bump-cli/internal/service"
)

func TestSearchFoodsLiveRead(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/food/search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("query"); got != "salmon" {
			t.Errorf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "f-7", "name": "Salmon", "calories": 208, "safety_status": "limited"}]`))
	}))
	defer ts.Close()

	deps, _ := newTestDeps(t, ts.URL, true)
	results, err := service.SearchFoods(context.Background(), deps, "  salmon  ")
	if err != nil {
		t.Fatalf("search foods: %v", err)
	}
	if len(results) != 1 || results[0].ID != "f-7" || results[0].SafetyStatus != "limited" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestSearchFoodsRejectsEmptyQuery(t *testing.T) {
	t.Parallel()
	deps, _ := newTestDeps(t, "http://127.0.0.1:0", true)
	if _, err := service.SearchFoods(context.Background(), deps, "   "); err == nil {
		t.Fatal("expected empty query to be rejected")
	}
}
