// Package syncq is the offline mutation queue. Writes attempted while the
// backend is unreachable are recorded here and replayed in submission order
// once connectivity returns. Delivery is at-least-once: a replay whose
// acknowledgment is lost may run again, so the recorded requests must be
// tolerable as duplicates.
package syncq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ItsHariii/bump-cli/internal/api"
	"github.com/ItsHariii/bump-cli/internal/store"
)

const (
	queueKey = "pending_actions"
	deadKey  = "dead_actions"

	DefaultMaxAttempts = 10
)

const (
	TypeFoodLogCreate = "food_log_create"
	TypeFoodLogUpdate = "food_log_update"
	TypeFoodLogDelete = "food_log_delete"
	TypeJournalCreate = "journal_create"
	TypeJournalUpdate = "journal_update"
	TypeJournalDelete = "journal_delete"
)

type PendingAction struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Endpoint  string          `json:"endpoint"`
	Method    string          `json:"method"`
	Payload   json.RawMessage `json:"data,omitempty"`
	CreatedAt int64           `json:"timestamp"`
	Attempts  int             `json:"attempts"`
}

// DeadAction is a pending action retired from replay, either because the
// backend rejected it permanently or because it exhausted its attempts.
type DeadAction struct {
	PendingAction
	Reason   string `json:"reason"`
	FailedAt int64  `json:"failed_at"`
}

// Dispatcher executes a recorded request. *api.Client satisfies it.
type Dispatcher interface {
	Do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error)
}

type Queue struct {
	Store       store.Store
	Dispatch    Dispatcher
	Logger      *slog.Logger
	Now         func() time.Time
	MaxAttempts int

	mu        sync.Mutex
	replaying bool
	online    bool
}

var allowedMethods = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

func (q *Queue) now() time.Time {
	if q.Now != nil {
		return q.Now()
	}
	return time.Now()
}

func (q *Queue) maxAttempts() int {
	if q.MaxAttempts > 0 {
		return q.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (q *Queue) logger() *slog.Logger {
	if q.Logger != nil {
		return q.Logger
	}
	return slog.Default()
}

// Enqueue records a mutating request for later replay. Ids are random
// uuids, so rapid successive calls never collide.
func (q *Queue) Enqueue(actionType, method, endpoint string, payload any) (PendingAction, error) {
	if !allowedMethods[method] {
		return PendingAction{}, fmt.Errorf("cannot queue %s request: only mutating methods are queued", method)
	}
	if endpoint == "" {
		return PendingAction{}, fmt.Errorf("queue endpoint is required")
	}

	var body json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return PendingAction{}, fmt.Errorf("marshal queued payload: %w", err)
		}
		body = raw
	}

	action := PendingAction{
		ID:        uuid.NewString(),
		Type:      actionType,
		Endpoint:  endpoint,
		Method:    method,
		Payload:   body,
		CreatedAt: q.now().UnixMilli(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	actions, err := q.loadLocked(queueKey)
	if err != nil {
		return PendingAction{}, err
	}
	actions = append(actions, action)
	if err := q.saveLocked(queueKey, actions); err != nil {
		return PendingAction{}, err
	}
	return action, nil
}

// SetOnline records the connectivity state. The offline-to-online edge
// triggers a replay; repeated online reports do not.
func (q *Queue) SetOnline(ctx context.Context, online bool) {
	q.mu.Lock()
	wasOnline := q.online
	q.online = online
	q.mu.Unlock()

	if !wasOnline && online {
		if err := q.ReplayAll(ctx); err != nil {
			q.logger().Warn("queue replay after reconnect failed", "error", err)
		}
	}
}

func (q *Queue) Online() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.online
}

// ReplayAll drains the queue in FIFO order, one request at a time. A failed
// action stays queued (or moves to the dead letters) without blocking the
// ones behind it. Re-entrant calls while a replay is in flight return
// immediately.
func (q *Queue) ReplayAll(ctx context.Context) error {
	q.mu.Lock()
	if !q.online || q.replaying {
		q.mu.Unlock()
		return nil
	}
	q.replaying = true
	actions, err := q.loadLocked(queueKey)
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.replaying = false
		q.mu.Unlock()
	}()

	if err != nil {
		return err
	}
	if len(actions) == 0 {
		return nil
	}

	retired := make(map[string]bool, len(actions))
	attempts := make(map[string]int, len(actions))
	var dead []DeadAction
	failures := 0

	for _, action := range actions {
		_, err := q.Dispatch.Do(ctx, action.Method, action.Endpoint, action.Payload)
		if err == nil {
			retired[action.ID] = true
			continue
		}
		failures++
		action.Attempts++
		attempts[action.ID] = action.Attempts

		var apiErr *api.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Permanent():
			retired[action.ID] = true
			dead = append(dead, DeadAction{
				PendingAction: action,
				Reason:        apiErr.Error(),
				FailedAt:      q.now().UnixMilli(),
			})
			q.logger().Warn("queued action rejected permanently",
				"id", action.ID, "type", action.Type, "status", apiErr.StatusCode)
		case action.Attempts >= q.maxAttempts():
			retired[action.ID] = true
			dead = append(dead, DeadAction{
				PendingAction: action,
				Reason:        fmt.Sprintf("gave up after %d attempts: %v", action.Attempts, err),
				FailedAt:      q.now().UnixMilli(),
			})
			q.logger().Warn("queued action exhausted retries",
				"id", action.ID, "type", action.Type, "attempts", action.Attempts)
		default:
			q.logger().Debug("queued action failed, will retry",
				"id", action.ID, "type", action.Type, "error", err)
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	// Reload before persisting so actions enqueued during the replay
	// survive the rewrite.
	current, err := q.loadLocked(queueKey)
	if err != nil {
		return err
	}
	remaining := current[:0]
	for _, action := range current {
		if retired[action.ID] {
			continue
		}
		if n, ok := attempts[action.ID]; ok {
			action.Attempts = n
		}
		remaining = append(remaining, action)
	}
	if err := q.saveLocked(queueKey, remaining); err != nil {
		return err
	}

	if len(dead) > 0 {
		existing, err := q.loadDeadLocked()
		if err != nil {
			return err
		}
		if err := q.saveDeadLocked(append(existing, dead...)); err != nil {
			return err
		}
	}

	if failures > 0 {
		q.logger().Warn("queue replay finished with failures",
			"replayed", len(actions), "failed", failures, "dead_lettered", len(dead))
	} else {
		q.logger().Info("queue replay finished", "replayed", len(actions))
	}
	return nil
}

// Pending returns the queued actions in replay order.
func (q *Queue) Pending() ([]PendingAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loadLocked(queueKey)
}

// Dead returns the retired actions awaiting user attention.
func (q *Queue) Dead() ([]DeadAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loadDeadLocked()
}

// RequeueDead moves every dead action back onto the queue with a fresh
// attempt budget and returns how many were restored.
func (q *Queue) RequeueDead() (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	dead, err := q.loadDeadLocked()
	if err != nil {
		return 0, err
	}
	if len(dead) == 0 {
		return 0, nil
	}
	actions, err := q.loadLocked(queueKey)
	if err != nil {
		return 0, err
	}
	for _, d := range dead {
		action := d.PendingAction
		action.Attempts = 0
		actions = append(actions, action)
	}
	if err := q.saveLocked(queueKey, actions); err != nil {
		return 0, err
	}
	if err := q.Store.Remove(deadKey); err != nil {
		return 0, fmt.Errorf("clear dead letters: %w", err)
	}
	return len(dead), nil
}

func (q *Queue) loadLocked(key string) ([]PendingAction, error) {
	raw, ok, err := q.Store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load queue %q: %w", key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var actions []PendingAction
	if err := json.Unmarshal([]byte(raw), &actions); err != nil {
		return nil, fmt.Errorf("decode queue %q: %w", key, err)
	}
	return actions, nil
}

func (q *Queue) saveLocked(key string, actions []PendingAction) error {
	raw, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("encode queue %q: %w", key, err)
	}
	if err := q.Store.Set(key, string(raw)); err != nil {
		return fmt.Errorf("persist queue %q: %w", key, err)
	}
	return nil
}

func (q *Queue) loadDeadLocked() ([]DeadAction, error) {
	raw, ok, err := q.Store.Get(deadKey)
	if err != nil {
		return nil, fmt.Errorf("load dead letters: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var dead []DeadAction
	if err := json.Unmarshal([]byte(raw), &dead); err != nil {
		return nil, fmt.Errorf("decode dead letters: %w", err)
	}
	return dead, nil
}

func (q *Queue) saveDeadLocked(dead []DeadAction) error {
	raw, err := json.Marshal(dead)
	if err != nil {
		return fmt.Errorf("encode dead letters: %w", err)
	}
	if err := q.Store.Set(deadKey, string(raw)); err != nil {
		return fmt.Errorf("persist dead letters: %w", err)
	}
	return nil
}
