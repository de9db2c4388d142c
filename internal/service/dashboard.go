package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ItsHariii/bump-cli/internal/cache"
	"github.com/ItsHariii/bump-cli/internal/model"
)

type DashboardData struct {
	Summary    *model.NutritionSummary
	Targets    *model.NutritionTargets
	Stale      bool
	FetchedNew bool
}

// Dashboard serves the daily summary and the nutrition targets through the
// cache. Both keys must hit for the cached pair to be used; a partial hit
// refetches both so the two values always describe the same moment. When
// the fetch fails, whatever the cache still holds is returned alongside the
// error, stale or not, so the caller can render last-known data.
func Dashboard(ctx context.Context, deps *Deps, date string, forceRefresh bool) (*DashboardData, error) {
	date, err := validateDate("date", date)
	if err != nil {
		return nil, err
	}
	summaryKey := cache.SummaryKey(date)

	// Snapshot the store before the freshness check: Get evicts entries at
	// or past their TTL, and these bytes are the fallback when the refresh
	// fails.
	staleSummary, staleTargets := snapshotStale(deps, summaryKey)

	if !forceRefresh {
		if data, ok := cachedPair(deps, summaryKey); ok {
			return data, nil
		}
	}

	summary, targets, fetchErr := fetchBoth(ctx, deps, date)
	if fetchErr == nil {
		if err := deps.Cache.Set(summaryKey, summary); err != nil {
			deps.logger().Warn("cache summary write failed", "error", err)
		}
		if err := deps.Cache.Set(cache.KeyTargets, targets); err != nil {
			deps.logger().Warn("cache targets write failed", "error", err)
		}
		return &DashboardData{Summary: &summary, Targets: &targets, FetchedNew: true}, nil
	}

	// Degraded path: stale data beats a blank screen.
	if staleSummary == nil && staleTargets == nil {
		return nil, fetchErr
	}
	return &DashboardData{Summary: staleSummary, Targets: staleTargets, Stale: true}, fetchErr
}

func snapshotStale(deps *Deps, summaryKey string) (*model.NutritionSummary, *model.NutritionTargets) {
	var summary *model.NutritionSummary
	var targets *model.NutritionTargets
	if raw, ok, _ := deps.Cache.GetStale(summaryKey); ok {
		var s model.NutritionSummary
		if json.Unmarshal(raw, &s) == nil {
			summary = &s
		}
	}
	if raw, ok, _ := deps.Cache.GetStale(cache.KeyTargets); ok {
		var t model.NutritionTargets
		if json.Unmarshal(raw, &t) == nil {
			targets = &t
		}
	}
	return summary, targets
}

func cachedPair(deps *Deps, summaryKey string) (*DashboardData, bool) {
	rawSummary, okSummary, _ := deps.Cache.Get(summaryKey, cache.DefaultTTL)
	rawTargets, okTargets, _ := deps.Cache.Get(cache.KeyTargets, cache.DefaultTTL)
	if !okSummary || !okTargets {
		return nil, false
	}
	var summary model.NutritionSummary
	var targets model.NutritionTargets
	if json.Unmarshal(rawSummary, &summary) != nil || json.Unmarshal(rawTargets, &targets) != nil {
		return nil, false
	}
	return &DashboardData{Summary: &summary, Targets: &targets}, true
}

func fetchBoth(ctx context.Context, deps *Deps, date string) (model.NutritionSummary, model.NutritionTargets, error) {
	var (
		wg         sync.WaitGroup
		summary    model.NutritionSummary
		targets    model.NutritionTargets
		summaryErr error
		targetsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		summary, summaryErr = deps.API.NutritionSummary(ctx, date)
	}()
	go func() {
		defer wg.Done()
		targets, targetsErr = deps.API.NutritionTargets(ctx)
	}()
	wg.Wait()

	if summaryErr != nil {
		return summary, targets, summaryErr
	}
	if targetsErr != nil {
		return summary, targets, targetsErr
	}
	return summary, targets, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
