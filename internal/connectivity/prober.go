// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/workers"
	"github.com/MKhiriev/go-agro-sync/models"
)

// VersionChecker is the part of [adapter.ServerAdapter] the prober needs.
type VersionChecker interface {
	Version(ctx context.Context) (models.VersionInfo, error)
}

// Prober is the platform connectivity signal: it periodically asks the
// server for its version over a transport that bypasses the worker cache.
type Prober struct {
	checker VersionChecker
	monitor *Monitor
	timeout time.Duration
	logger  *logger.Logger
}

func NewProber(checker VersionChecker, monitor *Monitor, timeout time.Duration, log *logger.Logger) *Prober {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &Prober{
		checker: checker,
		monitor: monitor,
		timeout: timeout,
		logger:  log,
	}
}

// Probe performs one check and feeds the result into the monitor. Any HTTP
// response, even an error status, means the server is reachable.
func (p *Prober) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.checker.Version(ctx)
	online := err == nil || !errors.Is(err, adapter.ErrTransport)

	if err != nil {
		p.logger.Debug().Err(err).Str("func", "*Prober.Probe").Bool("online", online).Msg("probe returned an error")
	}

	p.monitor.Set(online)
	return online
}

// Worker wraps the prober into a periodic background job that probes right
// away and then every interval.
func (p *Prober) Worker(interval time.Duration) workers.Worker {
	return workers.NewTickerWorker("connectivity-prober", interval, func(ctx context.Context) {
		p.Probe(ctx)
	}, p.logger, workers.RunImmediately())
}
