// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/models"
)

var errShuttingDown = errors.New("client is shutting down")

// inflight tracks reconciliation runs started outside the job group so that
// shutdown can wait for their results to be written before the local store
// is closed.
type inflight struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// begin registers a run. It fails once [inflight.close] has been called.
func (f *inflight) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return false
	}
	f.wg.Add(1)
	return true
}

func (f *inflight) done() {
	f.wg.Done()
}

// close rejects new runs and waits for the registered ones.
func (f *inflight) close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()

	f.wg.Wait()
}

// goReconcile runs r in the background unless shutdown has started.
func (f *inflight) goReconcile(ctx context.Context, r service.ClientReconciler) {
	if !f.begin() {
		return
	}
	go func() {
		defer f.done()
		r.Reconcile(ctx)
	}()
}

// trackedSync is a [service.SyncEventHandler] whose calls are tracked.
type trackedSync struct {
	next     service.SyncEventHandler
	inflight *inflight
}

func (t trackedSync) HandleSync(ctx context.Context, tag string) (models.SyncOutcome, error) {
	if !t.inflight.begin() {
		return models.SyncOutcome{}, errShuttingDown
	}
	defer t.inflight.done()

	return t.next.HandleSync(ctx, tag)
}
