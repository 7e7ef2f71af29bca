// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/models"
)

var ErrNoActiveWorker = errors.New("no active worker")

// Registration tracks the active and the waiting worker revision and
// connects the active one to the router.
type Registration struct {
	router *Router

	mu      sync.Mutex
	active  *Worker
	waiting *Worker

	logger *logger.Logger
}

func NewRegistration(router *Router, log *logger.Logger) *Registration {
	return &Registration{
		router: router,
		logger: log.WithComponent("worker-registration"),
	}
}

// Register installs w. It becomes active right away when nothing is active,
// otherwise it waits for SKIP_WAITING. A seeding failure is logged and does
// not prevent activation; the router fills the static cache on demand.
func (r *Registration) Register(ctx context.Context, w *Worker) error {
	if err := w.Install(ctx); err != nil {
		r.logger.Warn().Err(err).Str("func", "*Registration.Register").Msg("install incomplete")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return r.activateLocked(ctx, w)
	}

	r.waiting = w
	r.logger.Info().Str("version", w.Revision().Version).Msg("revision waiting")
	return nil
}

// SkipWaiting activates the waiting revision, if any.
func (r *Registration) SkipWaiting(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.waiting == nil {
		return nil
	}
	return r.activateLocked(ctx, r.waiting)
}

func (r *Registration) activateLocked(ctx context.Context, w *Worker) error {
	if _, err := w.Activate(ctx); err != nil {
		return fmt.Errorf("activate %s: %w", w.Revision().Version, err)
	}

	r.router.Use(w.Revision())
	r.active = w
	if r.waiting == w {
		r.waiting = nil
	}

	r.logger.Info().Str("version", w.Revision().Version).Msg("revision activated")
	return nil
}

// Active returns the active worker.
func (r *Registration) Active() (*Worker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.active != nil
}

// Waiting returns the installed but not yet active worker.
func (r *Registration) Waiting() (*Worker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.waiting, r.waiting != nil
}

// HandleSync dispatches a background sync event to the active worker.
func (r *Registration) HandleSync(ctx context.Context, tag string) (models.SyncOutcome, error) {
	w, ok := r.Active()
	if !ok {
		return models.SyncOutcome{}, ErrNoActiveWorker
	}
	return w.HandleSync(ctx, tag)
}

// HandleMessage is the [messaging.Handler] of the worker side.
func (r *Registration) HandleMessage(ctx context.Context, msg messaging.Message) messaging.Message {
	switch msg.Type {
	case messaging.SkipWaiting:
		if err := r.SkipWaiting(ctx); err != nil {
			r.logger.Err(err).Str("func", "*Registration.HandleMessage").Msg("skip waiting failed")
			return messaging.Message{Type: msg.Type, Error: err.Error()}
		}

	case messaging.GetVersion:
		w, ok := r.Active()
		if !ok {
			return messaging.Message{Type: msg.Type, Error: ErrNoActiveWorker.Error()}
		}
		return messaging.Message{Type: msg.Type, Version: w.Revision().Tag}

	case messaging.CacheURLs:
		w, ok := r.Active()
		if !ok {
			return messaging.Message{Type: msg.Type, Error: ErrNoActiveWorker.Error()}
		}
		if err := w.CacheURLs(ctx, msg.URLs); err != nil {
			r.logger.Warn().Err(err).Str("func", "*Registration.HandleMessage").Msg("cache urls failed")
			return messaging.Message{Type: msg.Type, Error: err.Error()}
		}

	default:
		r.logger.Debug().Str("type", string(msg.Type)).Msg("ignoring message")
	}

	return messaging.Message{Type: msg.Type}
}
