// Package connectivity tracks whether the backend is reachable and reports
// transitions. Subscribers get edge-triggered notifications: repeated polls
// with an unchanged result stay silent.
package connectivity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ItsHariii/bump-cli/internal/api"
)

type Status struct {
	Connected         bool
	InternetReachable *bool
}

// Online applies the effective rule: connected, and internet not known to be
// unreachable. A nil InternetReachable (unknown) counts as online.
func (s Status) Online() bool {
	return s.Connected && (s.InternetReachable == nil || *s.InternetReachable)
}

type Prober func(ctx context.Context) Status

// HealthProber derives connectivity from the backend's health endpoint. Any
// HTTP response at all means the network path is up; only transport-level
// failures read as offline.
func HealthProber(client *api.Client) Prober {
	return func(ctx context.Context) Status {
		err := client.Health(ctx)
		if err == nil {
			reachable := true
			return Status{Connected: true, InternetReachable: &reachable}
		}
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			reachable := true
			return Status{Connected: true, InternetReachable: &reachable}
		}
		reachable := false
		return Status{Connected: false, InternetReachable: &reachable}
	}
}

type Monitor struct {
	probe        Prober
	onTransition func(wasOnline, isOnline bool)

	mu     sync.Mutex
	status Status
}

// NewMonitor starts in the offline state; the first successful probe fires
// the offline-to-online transition.
func NewMonitor(probe Prober, onTransition func(wasOnline, isOnline bool)) *Monitor {
	return &Monitor{probe: probe, onTransition: onTransition}
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status.Online()
}

// Refresh probes once and applies the result.
func (m *Monitor) Refresh(ctx context.Context) Status {
	status := m.probe(ctx)
	m.Apply(status)
	return status
}

// Apply records a status observation (from a probe or an external platform
// observer) and notifies the subscriber only if the effective online state
// flipped.
func (m *Monitor) Apply(status Status) {
	m.mu.Lock()
	wasOnline := m.status.Online()
	m.status = status
	isOnline := status.Online()
	m.mu.Unlock()

	if wasOnline != isOnline && m.onTransition != nil {
		m.onTransition(wasOnline, isOnline)
	}
}

// Poll refreshes at the given interval until the context is done.
func (m *Monitor) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		m.Refresh(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
