// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connectivity mirrors the reachability of the ingestion server as a
// single process-wide flag with edge-triggered transition events.
package connectivity

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
)

// Event is a connectivity transition.
type Event int

const (
	BecameOffline Event = iota
	BecameOnline
)

func (e Event) String() string {
	if e == BecameOnline {
		return "online"
	}
	return "offline"
}

// Listener receives transition events. It runs on the goroutine that called
// [Monitor.Set] and should hand long work off to its own goroutine.
type Listener func(Event)

// Monitor holds the current connectivity state.
type Monitor struct {
	online atomic.Bool
	// setMu orders transitions and their notifications
	setMu sync.Mutex

	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener

	logger *logger.Logger
}

// NewMonitor returns a Monitor starting in the given state.
func NewMonitor(online bool, log *logger.Logger) *Monitor {
	m := &Monitor{
		listeners: make(map[int]Listener),
		logger:    log.WithComponent("connectivity"),
	}
	m.online.Store(online)
	return m
}

// IsOnline reports the last known state.
func (m *Monitor) IsOnline() bool {
	return m.online.Load()
}

// Set records the platform signal. Listeners are notified only when the
// state actually changes, exactly once per transition, in the order the
// transitions happened. Concurrent calls are serialized; a listener must not
// call Set itself.
func (m *Monitor) Set(online bool) {
	m.setMu.Lock()
	defer m.setMu.Unlock()

	if !m.online.CompareAndSwap(!online, online) {
		return
	}

	event := BecameOffline
	if online {
		event = BecameOnline
	}
	m.logger.Info().Str("state", event.String()).Msg("connectivity changed")

	m.mu.Lock()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.mu.Unlock()

	for _, l := range listeners {
		l(event)
	}
}

// Subscribe registers l and returns a function that removes it.
func (m *Monitor) Subscribe(l Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// OnOnline is a convenience wrapper subscribing fn to BecameOnline only.
func (m *Monitor) OnOnline(fn func()) (unsubscribe func()) {
	return m.Subscribe(func(e Event) {
		if e == BecameOnline {
			fn()
		}
	})
}
