package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ItsHariii/bump-cli/internal/api"
)

func boolPtr(v bool) *bool { return &v }

func TestStatusOnlineRule(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status Status
		want   bool
	}{
		{"connected and reachable", Status{Connected: true, InternetReachable: boolPtr(true)}, true},
		{"connected, reachability unknown", Status{Connected: true}, true},
		{"connected but unreachable", Status{Connected: true, InternetReachable: boolPtr(false)}, false},
		{"disconnected", Status{Connected: false, InternetReachable: boolPtr(true)}, false},
		{"zero value", Status{}, false},
	}
	for _, tc := range cases {
		if got := tc.status.Online(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestMonitorNotifiesOnlyOnTransitions(t *testing.T) {
	t.Parallel()

	var transitions []bool
	m := NewMonitor(nil, func(wasOnline, isOnline bool) {
		transitions = append(transitions, isOnline)
	})

	online := Status{Connected: true, InternetReachable: boolPtr(true)}
	offline := Status{Connected: false, InternetReachable: boolPtr(false)}

	m.Apply(online)
	m.Apply(online)
	m.Apply(online)
	m.Apply(offline)
	m.Apply(offline)
	m.Apply(online)

	want := []bool{true, false, true}
	if len(transitions) != len(want) {
		t.Fatalf("expected %d transitions, got %v", len(want), transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transition %d: expected %v, got %v", i, want[i], transitions[i])
		}
	}
}

func TestHealthProberClassifiesResponses(t *testing.T) {
	t.Parallel()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	degraded := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer degraded.Close()

	probe := HealthProber(&api.Client{BaseURL: healthy.URL, HTTPClient: healthy.Client()})
	if !probe(context.Background()).Online() {
		t.Fatal("healthy backend should read as online")
	}

	// A 503 still proves the network path works.
	probe = HealthProber(&api.Client{BaseURL: degraded.URL, HTTPClient: degraded.Client()})
	if !probe(context.Background()).Online() {
		t.Fatal("reachable-but-degraded backend should read as online")
	}

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()
	probe = HealthProber(&api.Client{BaseURL: deadURL})
	if probe(context.Background()).Online() {
		t.Fatal("unreachable backend should read as offline")
	}
}
