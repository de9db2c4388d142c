package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/syncq"
)

func validateRatings(in model.JournalEntryInput) error {
	for name, v := range map[string]*int{
		"mood":          in.Mood,
		"sleep quality": in.SleepQuality,
		"energy level":  in.EnergyLevel,
	} {
		if v != nil && (*v < 1 || *v > 5) {
			return fmt.Errorf("%s must be between 1 and 5", name)
		}
	}
	return nil
}

// AddJournalEntry creates a journal entry, queueing it when offline.
// Journal writes never touch the nutrition cache.
func AddJournalEntry(ctx context.Context, deps *Deps, in model.JournalEntryInput) (bool, error) {
	date, err := validateDate("entry date", in.EntryDate)
	if err != nil {
		return false, err
	}
	in.EntryDate = date
	if err := validateRatings(in); err != nil {
		return false, err
	}
	return routeMutation(ctx, deps, mutation{
		actionType: syncq.TypeJournalCreate,
		method:     http.MethodPost,
		endpoint:   "/journal/entries",
		payload:    in,
		direct: func() error {
			_, err := deps.API.CreateJournalEntry(ctx, in)
			return err
		},
	})
}

func UpdateJournalEntry(ctx context.Context, deps *Deps, entryID string, in model.JournalEntryInput) (bool, error) {
	if strings.TrimSpace(entryID) == "" {
		return false, fmt.Errorf("entry id is required")
	}
	if err := validateRatings(in); err != nil {
		return false, err
	}
	return routeMutation(ctx, deps, mutation{
		actionType: syncq.TypeJournalUpdate,
		method:     http.MethodPut,
		endpoint:   "/journal/entries/" + url.PathEscape(entryID),
		payload:    in,
		direct: func() error {
			return deps.API.UpdateJournalEntry(ctx, entryID, in)
		},
	})
}

func DeleteJournalEntry(ctx context.Context, deps *Deps, entryID string) (bool, error) {
	if strings.TrimSpace(entryID) == "" {
		return false, fmt.Errorf("entry id is required")
	}
	return routeMutation(ctx, deps, mutation{
		actionType: syncq.TypeJournalDelete,
		method:     http.MethodDelete,
		endpoint:   "/journal/entries/" + url.PathEscape(entryID),
		direct: func() error {
			return deps.API.DeleteJournalEntry(ctx, entryID)
		},
	})
}

// ListJournal is a live read; the journal is not cached.
func ListJournal(ctx context.Context, deps *Deps) ([]model.JournalEntry, error) {
	return deps.API.ListJournal(ctx)
}
