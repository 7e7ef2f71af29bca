// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
)

const defaultInterval = 5 * time.Minute

// TickerOption configures a ticker worker.
type TickerOption func(*tickerWorker)

// RunImmediately makes the worker run its job once right after Start
// instead of waiting for the first tick.
func RunImmediately() TickerOption {
	return func(t *tickerWorker) {
		t.immediate = true
	}
}

type tickerWorker struct {
	name      string
	interval  time.Duration
	job       Job
	immediate bool
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTickerWorker returns a Worker that calls job every interval. A zero or
// negative interval defaults to five minutes. Runs never overlap: a slow job
// delays the next tick.
func NewTickerWorker(name string, interval time.Duration, job Job, log *logger.Logger, opts ...TickerOption) Worker {
	if interval <= 0 {
		interval = defaultInterval
	}

	t := &tickerWorker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   log.WithComponent(name),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start stops any previously running loop and launches a new one bound to ctx.
func (t *tickerWorker) Start(ctx context.Context) {
	t.Stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(t.logger.WithContext(ctx))
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	t.logger.Debug().Dur("interval", t.interval).Msg("worker started")

	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		if t.immediate {
			t.job(jobCtx)
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				t.job(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. A no-op when not running.
func (t *tickerWorker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
		t.logger.Debug().Msg("worker stopped")
	}
	t.wg.Wait()
}
