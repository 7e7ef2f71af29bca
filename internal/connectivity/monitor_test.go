// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
)

// ── Monitor ──────────────────────────────────────────────────────────────────

func TestMonitor_InitialState(t *testing.T) {
	assert.True(t, NewMonitor(true, logger.Nop()).IsOnline())
	assert.False(t, NewMonitor(false, logger.Nop()).IsOnline())
}

func TestMonitor_EdgeTriggered(t *testing.T) {
	m := NewMonitor(false, logger.Nop())

	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })

	m.Set(false)
	m.Set(true)
	m.Set(true)
	m.Set(true)
	m.Set(false)
	m.Set(true)

	assert.Equal(t, []Event{BecameOnline, BecameOffline, BecameOnline}, events)
}

// TestMonitor_ConcurrentSetFiresOnce verifies racing identical signals
// produce a single transition event.
func TestMonitor_ConcurrentSetFiresOnce(t *testing.T) {
	m := NewMonitor(false, logger.Nop())

	var onlineEvents atomic.Int32
	m.OnOnline(func() { onlineEvents.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Set(true)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), onlineEvents.Load())
}

// TestMonitor_RacingTransitionsKeepOrder flips the state from many
// goroutines; listeners must still see strictly alternating events that
// start with the first transition and end with the final state.
func TestMonitor_RacingTransitionsKeepOrder(t *testing.T) {
	m := NewMonitor(false, logger.Nop())

	var (
		mu     sync.Mutex
		events []Event
	)
	m.Subscribe(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Set(i%2 == 0)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()

	if len(events) == 0 {
		assert.False(t, m.IsOnline())
		return
	}
	assert.Equal(t, BecameOnline, events[0])
	for i := 1; i < len(events); i++ {
		assert.NotEqual(t, events[i-1], events[i], "event %d repeats the previous one", i)
	}
	assert.Equal(t, m.IsOnline(), events[len(events)-1] == BecameOnline)
}

func TestMonitor_Unsubscribe(t *testing.T) {
	m := NewMonitor(false, logger.Nop())

	var calls int
	unsubscribe := m.Subscribe(func(Event) { calls++ })
	m.Set(true)
	unsubscribe()
	m.Set(false)

	assert.Equal(t, 1, calls)
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "online", BecameOnline.String())
	assert.Equal(t, "offline", BecameOffline.String())
}

// ── Prober ───────────────────────────────────────────────────────────────────

type stubChecker struct {
	mu  sync.Mutex
	err error
}

func (s *stubChecker) Version(ctx context.Context) (models.VersionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.VersionInfo{}, s.err
	}
	return models.VersionInfo{Version: "2.1.0"}, nil
}

func (s *stubChecker) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func TestProber_Probe(t *testing.T) {
	checker := &stubChecker{}
	m := NewMonitor(false, logger.Nop())
	p := NewProber(checker, m, time.Second, logger.Nop())
	ctx := context.Background()

	checker.setErr(fmt.Errorf("version: %w", adapter.ErrTransport))
	assert.False(t, p.Probe(ctx))
	assert.False(t, m.IsOnline())

	// a reachable server answering 500 still counts as online
	checker.setErr(fmt.Errorf("version: %w", adapter.ErrInternalServerError))
	assert.True(t, p.Probe(ctx))
	assert.True(t, m.IsOnline())

	checker.setErr(fmt.Errorf("version: %w", adapter.ErrTransport))
	assert.False(t, p.Probe(ctx))
	assert.False(t, m.IsOnline())
}

func TestProber_Worker(t *testing.T) {
	checker := &stubChecker{}
	m := NewMonitor(false, logger.Nop())

	became := make(chan struct{}, 1)
	m.OnOnline(func() { became <- struct{}{} })

	w := NewProber(checker, m, time.Second, logger.Nop()).Worker(time.Hour)
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-became:
	case <-time.After(time.Second):
		t.Fatal("prober did not report online")
	}
	assert.True(t, m.IsOnline())
}
