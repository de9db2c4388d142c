package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ItsHariii/bump-cli/internal/api"
	"github.com/ItsHariii/bump-cli/internal/cache"
	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/syncq"
)

// LogFood records a food entry. Online it calls the API directly; offline
// (or when the call fails at the transport level) it queues the mutation for
// replay. Either way the day's cached summary is invalidated so the next
// dashboard read refetches. Returns whether the action was queued.
func LogFood(ctx context.Context, deps *Deps, in model.FoodLogInput) (bool, error) {
	if strings.TrimSpace(in.FoodID) == "" {
		return false, fmt.Errorf("food id is required")
	}
	if err := validatePositiveFloat("serving size", in.ServingSize); err != nil {
		return false, err
	}
	if strings.TrimSpace(in.ServingUnit) == "" {
		return false, fmt.Errorf("serving unit is required")
	}

	date := in.ConsumedAt.Format("2006-01-02")
	queued, err := routeMutation(ctx, deps, mutation{
		actionType: syncq.TypeFoodLogCreate,
		method:     http.MethodPost,
		endpoint:   "/food/log",
		payload:    in,
		direct: func() error {
			return deps.API.CreateFoodLog(ctx, in)
		},
	})
	if err != nil {
		return queued, err
	}
	invalidateSummary(deps, date)
	return queued, nil
}

// UpdateFoodLog patches an existing entry. The date identifies which day's
// cached summary to invalidate.
func UpdateFoodLog(ctx context.Context, deps *Deps, logID, date string, fields map[string]any) (bool, error) {
	if strings.TrimSpace(logID) == "" {
		return false, fmt.Errorf("log id is required")
	}
	if len(fields) == 0 {
		return false, fmt.Errorf("no fields to update")
	}
	date, err := validateDate("date", date)
	if err != nil {
		return false, err
	}
	queued, err := routeMutation(ctx, deps, mutation{
		actionType: syncq.TypeFoodLogUpdate,
		method:     http.MethodPatch,
		endpoint:   "/food/log/" + url.PathEscape(logID),
		payload:    fields,
		direct: func() error {
			return deps.API.UpdateFoodLog(ctx, logID, fields)
		},
	})
	if err != nil {
		return queued, err
	}
	invalidateSummary(deps, date)
	return queued, nil
}

func DeleteFoodLog(ctx context.Context, deps *Deps, logID, date string) (bool, error) {
	if strings.TrimSpace(logID) == "" {
		return false, fmt.Errorf("log id is required")
	}
	date, err := validateDate("date", date)
	if err != nil {
		return false, err
	}
	queued, err := routeMutation(ctx, deps, mutation{
		actionType: syncq.TypeFoodLogDelete,
		method:     http.MethodDelete,
		endpoint:   "/food/log/" + url.PathEscape(logID),
		direct: func() error {
			return deps.API.DeleteFoodLog(ctx, logID)
		},
	})
	if err != nil {
		return queued, err
	}
	invalidateSummary(deps, date)
	return queued, nil
}

type mutation struct {
	actionType string
	method     string
	endpoint   string
	payload    any
	direct     func() error
}

// routeMutation sends a write straight to the API when online, queueing it
// instead when offline or when the direct call dies in transit. Server
// rejections (any HTTP response) are returned to the caller, not queued:
// replaying a request the backend already refused would not help.
func routeMutation(ctx context.Context, deps *Deps, m mutation) (bool, error) {
	if deps.online() {
		err := m.direct()
		if err == nil {
			return false, nil
		}
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			return false, err
		}
		deps.logger().Info("direct call failed, queueing for replay",
			"type", m.actionType, "error", err)
	}
	if _, err := deps.Queue.Enqueue(m.actionType, m.method, m.endpoint, m.payload); err != nil {
		return false, fmt.Errorf("queue %s: %w", m.actionType, err)
	}
	return true, nil
}

// invalidateSummary drops the cached summary for the mutated day. The
// targets key is left alone: food mutations never change targets.
func invalidateSummary(deps *Deps, date string) {
	if err := deps.Cache.Invalidate(cache.SummaryKey(date)); err != nil {
		deps.logger().Warn("summary cache invalidation failed", "date", date, "error", err)
	}
}
