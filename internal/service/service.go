// Package service ties the cache, the offline queue, and the remote API
// together behind the operations the UI layer calls.
package service

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ItsHariii/bump-cli/internal/api"
	"github.com/ItsHariii/bump-cli/internal/cache"
	"github.com/ItsHariii/bump-cli/internal/syncq"
)

// Deps carries the collaborators a service call needs. Online reports the
// current connectivity signal; it decides whether mutations go straight to
// the API or into the queue.
type Deps struct {
	DB     *sql.DB
	Cache  *cache.Cache
	API    *api.Client
	Queue  *syncq.Queue
	Online func() bool
	Logger *slog.Logger
}

func (d *Deps) online() bool {
	return d.Online != nil && d.Online()
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func validateDate(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	if _, err := parseDate(value); err != nil {
		return "", fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return value, nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}
