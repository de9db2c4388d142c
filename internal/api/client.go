// Package api is the HTTP client for the nutrition backend. All methods take
// a context and return wrapped errors; server-reported failures surface as
// *APIError so callers can tell retriable from permanent ones.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ItsHariii/bump-cli/internal/model"
)

const (
	defaultBaseURL = "https://api.bumptrack.app"
	defaultTimeout = 10 * time.Second
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Message)
}

// Permanent reports whether retrying the same request can ever succeed.
// Validation-style 4xx responses are permanent; 408 and 429 are transient
// despite being client-class statuses.
func (e *APIError) Permanent() bool {
	if e.StatusCode == http.StatusRequestTimeout || e.StatusCode == http.StatusTooManyRequests {
		return false
	}
	return e.StatusCode >= 400 && e.StatusCode < 500
}

type Client struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}

// Do issues a request against an endpoint path (e.g. "/food/log") with an
// optional JSON body and returns the response body. The offline queue uses
// it to replay arbitrary recorded mutations.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	var body io.Reader
	if len(payload) > 0 {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, endpoint, err)
	}
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(c.AuthToken); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return respBody, &APIError{StatusCode: resp.StatusCode, Message: errorDetail(respBody)}
	}
	return respBody, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := c.Do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// NutritionSummary fetches the macro/micronutrient totals for one day.
// The date is YYYY-MM-DD.
func (c *Client) NutritionSummary(ctx context.Context, date string) (model.NutritionSummary, error) {
	var out model.NutritionSummary
	endpoint := "/food/nutrition-summary?date=" + url.QueryEscape(date)
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return model.NutritionSummary{}, err
	}
	return out, nil
}

// NutritionTargets fetches the per-user daily targets. Targets depend on
// trimester and profile, not on logged food.
func (c *Client) NutritionTargets(ctx context.Context) (model.NutritionTargets, error) {
	var out model.NutritionTargets
	if err := c.getJSON(ctx, "/users/nutrition-targets", &out); err != nil {
		return model.NutritionTargets{}, err
	}
	return out, nil
}

// Me fetches the current user's profile, including the due date.
func (c *Client) Me(ctx context.Context) (model.Profile, error) {
	var out model.Profile
	if err := c.getJSON(ctx, "/users/me", &out); err != nil {
		return model.Profile{}, err
	}
	return out, nil
}

// SearchFoods queries the backend's unified food search. Results carry the
// food ids that food-log entries reference, plus per-item pregnancy safety
// guidance.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]model.FoodSearchResult, error) {
	var out []model.FoodSearchResult
	endpoint := "/food/search?query=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateFoodLog(ctx context.Context, in model.FoodLogInput) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal food log: %w", err)
	}
	_, err = c.Do(ctx, http.MethodPost, "/food/log", payload)
	return err
}

func (c *Client) UpdateFoodLog(ctx context.Context, logID string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal food log update: %w", err)
	}
	_, err = c.Do(ctx, http.MethodPatch, "/food/log/"+url.PathEscape(logID), payload)
	return err
}

func (c *Client) DeleteFoodLog(ctx context.Context, logID string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/food/log/"+url.PathEscape(logID), nil)
	return err
}

func (c *Client) ListJournal(ctx context.Context) ([]model.JournalEntry, error) {
	var out struct {
		Entries []model.JournalEntry `json:"entries"`
		Total   int                  `json:"total"`
	}
	if err := c.getJSON(ctx, "/journal/entries", &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

func (c *Client) CreateJournalEntry(ctx context.Context, in model.JournalEntryInput) (model.JournalEntry, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("marshal journal entry: %w", err)
	}
	body, err := c.Do(ctx, http.MethodPost, "/journal/entries", payload)
	if err != nil {
		return model.JournalEntry{}, err
	}
	var out model.JournalEntry
	if err := json.Unmarshal(body, &out); err != nil {
		return model.JournalEntry{}, fmt.Errorf("decode journal entry response: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateJournalEntry(ctx context.Context, entryID string, in model.JournalEntryInput) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal journal entry update: %w", err)
	}
	_, err = c.Do(ctx, http.MethodPut, "/journal/entries/"+url.PathEscape(entryID), payload)
	return err
}

func (c *Client) DeleteJournalEntry(ctx context.Context, entryID string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/journal/entries/"+url.PathEscape(entryID), nil)
	return err
}

// Health probes the backend's health endpoint. The connectivity monitor uses
// it as the reachability signal.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.Do(ctx, http.MethodGet, "/health", nil)
	return err
}

func errorDetail(body []byte) string {
	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Detail != "" {
			return parsed.Detail
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	detail := strings.TrimSpace(string(body))
	if len(detail) > 200 {
		detail = detail[:200]
	}
	return detail
}
