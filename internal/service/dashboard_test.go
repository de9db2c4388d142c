package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ItsHariii/bump-cli/internal/api"
	"github.com/ItsHariii/bump-cli/internal/cache"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/ItsHariii/bump-cli/internal/store"
	"github.com/ItsHariii/bump-cli/internal/syncq"
)

func nutritionHandler(summaryHits, targetHits *int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/food/nutrition-summary":
			atomic.AddInt32(summaryHits, 1)
			_, _ = w.Write([]byte(`{"date": "2026-03-01", "total_calories": 1500, "protein_g": 80}`))
		case "/users/nutrition-targets":
			atomic.AddInt32(targetHits, 1)
			_, _ = w.Write([]byte(`{"calories": 2340, "macros": {"protein_g": 146.3}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestDashboardCachesSecondRead(t *testing.T) {
	t.Parallel()
	var summaryHits, targetHits int32
	ts := httptest.NewServer(nutritionHandler(&summaryHits, &targetHits))
	defer ts.Close()

	deps, _ := newTestDeps(t, ts.URL, true)
	ctx := context.Background()

	first, err := service.Dashboard(ctx, deps, "2026-03-01", false)
	if err != nil {
		t.Fatalf("first dashboard: %v", err)
	}
	if !first.FetchedNew || first.Summary.TotalCalories != 1500 || first.Targets.Calories != 2340 {
		t.Fatalf("unexpected first result: %+v", first)
	}

	second, err := service.Dashboard(ctx, deps, "2026-03-01", false)
	if err != nil {
		t.Fatalf("second dashboard: %v", err)
	}
	if second.FetchedNew || second.Stale {
		t.Fatalf("second read should come from cache: %+v", second)
	}
	if atomic.LoadInt32(&summaryHits) != 1 || atomic.LoadInt32(&targetHits) != 1 {
		t.Fatalf("expected one remote fetch per endpoint, got summary=%d targets=%d",
			summaryHits, targetHits)
	}
}

func TestDashboardForceRefreshBypassesCache(t *testing.T) {
	t.Parallel()
	var summaryHits, targetHits int32
	ts := httptest.NewServer(nutritionHandler(&summaryHits, &targetHits))
	defer ts.Close()

	deps, _ := newTestDeps(t, ts.URL, true)
	ctx := context.Background()

	if _, err := service.Dashboard(ctx, deps, "2026-03-01", false); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	result, err := service.Dashboard(ctx, deps, "2026-03-01", true)
	if err != nil {
		t.Fatalf("forced dashboard: %v", err)
	}
	if !result.FetchedNew {
		t.Fatal("force refresh must hit the network")
	}
	if atomic.LoadInt32(&summaryHits) != 2 {
		t.Fatalf("expected 2 summary fetches, got %d", summaryHits)
	}
}

func TestDashboardPartialHitRefetchesBoth(t *testing.T) {
	t.Parallel()
	var summaryHits, targetHits int32
	ts := httptest.NewServer(nutritionHandler(&summaryHits, &targetHits))
	defer ts.Close()

	deps, _ := newTestDeps(t, ts.URL, true)
	ctx := context.Background()

	if _, err := service.Dashboard(ctx, deps, "2026-03-01", false); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	// Simulate a food mutation dropping only the summary key.
	if err := deps.Cache.Invalidate("nutrition_summary:2026-03-01"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	result, err := service.Dashboard(ctx, deps, "2026-03-01", false)
	if err != nil {
		t.Fatalf("dashboard after invalidation: %v", err)
	}
	if !result.FetchedNew {
		t.Fatal("partial cache hit must force a refetch of both keys")
	}
	if atomic.LoadInt32(&summaryHits) != 2 || atomic.LoadInt32(&targetHits) != 2 {
		t.Fatalf("expected both endpoints refetched, got summary=%d targets=%d",
			summaryHits, targetHits)
	}
}

func TestDashboardStaleFallbackOnFetchFailure(t *testing.T) {
	t.Parallel()
	var summaryHits, targetHits int32
	ts := httptest.NewServer(nutritionHandler(&summaryHits, &targetHits))

	deps, _ := newTestDeps(t, ts.URL, true)
	ctx := context.Background()

	if _, err := service.Dashboard(ctx, deps, "2026-03-01", false); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	// Backend goes away; a forced refresh fails but stale data survives.
	ts.Close()
	result, err := service.Dashboard(ctx, deps, "2026-03-01", true)
	if err == nil {
		t.Fatal("expected fetch error once the backend is down")
	}
	if result == nil || !result.Stale {
		t.Fatalf("expected stale fallback data alongside the error, got %+v", result)
	}
	if result.Summary == nil || result.Summary.TotalCalories != 1500 {
		t.Fatalf("expected last-known summary, got %+v", result.Summary)
	}
	if result.Targets == nil || result.Targets.Calories != 2340 {
		t.Fatalf("expected last-known targets, got %+v", result.Targets)
	}
}

func TestDashboardExpiredCacheSurvivesFetchFailure(t *testing.T) {
	t.Parallel()
	var summaryHits, targetHits int32
	ts := httptest.NewServer(nutritionHandler(&summaryHits, &targetHits))

	// A plain read past the TTL evicts the entries before the refresh runs;
	// the evicted payloads must still come back when that refresh fails.
	current := time.Now()
	s := store.NewMemStore()
	client := &api.Client{BaseURL: ts.URL}
	deps := &service.Deps{
		DB:     newTestDB(t),
		Cache:  cache.New(s, func() time.Time { return current }),
		API:    client,
		Queue:  &syncq.Queue{Store: s, Dispatch: client},
		Online: func() bool { return true },
	}
	ctx := context.Background()

	if _, err := service.Dashboard(ctx, deps, "2026-03-01", false); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	// Entries age past the TTL and the backend disappears.
	current = current.Add(cache.DefaultTTL + time.Minute)
	ts.Close()

	result, err := service.Dashboard(ctx, deps, "2026-03-01", false)
	if err == nil {
		t.Fatal("expected fetch error once the backend is down")
	}
	if result == nil || !result.Stale {
		t.Fatalf("expected stale fallback data alongside the error, got %+v", result)
	}
	if result.Summary == nil || result.Summary.TotalCalories != 1500 {
		t.Fatalf("expected last-known summary, got %+v", result.Summary)
	}
	if result.Targets == nil || result.Targets.Calories != 2340 {
		t.Fatalf("expected last-known targets, got %+v", result.Targets)
	}
}

func TestDashboardNoCacheNoBackendFails(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	deps, _ := newTestDeps(t, url, true)
	result, err := service.Dashboard(context.Background(), deps, "2026-03-01", false)
	if err == nil {
		t.Fatal("expected error with empty cache and dead backend")
	}
	if result != nil {
		t.Fatalf("expected no data, got %+v", result)
	}
}

func TestDashboardRejectsBadDate(t *testing.T) {
	t.Parallel()
	deps, _ := newTestDeps(t, "http://127.0.0.1:0", true)
	if _, err := service.Dashboard(context.Background(), deps, "03/01/2026", false); err == nil {
		t.Fatal("expected invalid date to be rejected")
	}
}
