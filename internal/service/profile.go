package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/pregnancy"
)

// ErrDueDateNotSet marks the explicit "unset" state. Callers surface it as a
// prompt to set the due date, not as a failure.
var ErrDueDateNotSet = errors.New("due date not set")

func DueDate(db *sql.DB) (time.Time, error) {
	value, ok, err := GetConfig(db, ConfigDueDate)
	if err != nil {
		return time.Time{}, err
	}
	if !ok || value == "" {
		return time.Time{}, ErrDueDateNotSet
	}
	due, err := parseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("stored due date %q is invalid: %w", value, err)
	}
	return due, nil
}

func SaveDueDate(db *sql.DB, date string) error {
	date, err := validateDate("due date", date)
	if err != nil {
		return err
	}
	return SetConfig(db, ConfigDueDate, date)
}

// Progress computes the pregnancy snapshot from the stored due date.
func Progress(db *sql.DB, now time.Time) (pregnancy.Progress, error) {
	due, err := DueDate(db)
	if err != nil {
		return pregnancy.Progress{}, err
	}
	return pregnancy.CalculateProgress(due, now), nil
}

// SyncProfile fetches the remote profile and mirrors its due date into local
// config so progress works offline afterwards.
func SyncProfile(ctx context.Context, deps *Deps) (model.Profile, error) {
	profile, err := deps.API.Me(ctx)
	if err != nil {
		return model.Profile{}, err
	}
	if profile.DueDate != "" {
		if err := SaveDueDate(deps.DB, profile.DueDate); err != nil {
			return profile, fmt.Errorf("store due date from profile: %w", err)
		}
	}
	return profile, nil
}
