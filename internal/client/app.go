// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/connectivity"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/internal/tui"
	"github.com/MKhiriev/go-agro-sync/internal/worker"
	"github.com/MKhiriev/go-agro-sync/internal/workers"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/prometheus/client_golang/prometheus"
)

const messageInboxSize = 16

type App struct {
	storages     *store.ClientStorages
	services     *service.ClientServices
	registration *worker.Registration
	router       *worker.Router
	channel      *messaging.Channel
	monitor      *connectivity.Monitor
	jobs         *workers.Workers
	tui          *tui.TUI
	registry     *prometheus.Registry
	inflight     *inflight

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local store and assembles the client. Nothing runs in the
// background until [App.Run].
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(ctx, cfg, storages, build, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, storages *store.ClientStorages, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	metrics, err := worker.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register worker metrics: %w", err)
	}

	cache := worker.NewCacheStorage(storages.CacheRepository)
	router := worker.NewRouter(http.DefaultTransport, cache, metrics, log)

	// page requests go through the worker router, probes bypass it
	pageAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, router, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	directAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, http.DefaultTransport, log)
	if err != nil {
		return nil, fmt.Errorf("create probe adapter: %w", err)
	}

	monitor := connectivity.NewMonitor(false, log)
	prober := connectivity.NewProber(directAdapter, monitor, cfg.Adapter.RequestTimeout, log)
	prober.Probe(ctx)

	channel := messaging.NewChannel(messageInboxSize, log)
	services := service.NewClientServices(storages, pageAdapter, monitor, channel, log)

	if err = services.RecordStore.Load(ctx); err != nil {
		log.Warn().Err(err).Str("func", "client.newApp").Msg("offline queue not restored, starting empty")
	}

	w, err := worker.NewWorker(worker.NewRevision(cfg.Cache), cache, http.DefaultTransport, cfg.Adapter.HTTPAddress, services.Reconciler, log)
	if err != nil {
		return nil, fmt.Errorf("create worker: %w", err)
	}
	registration := worker.NewRegistration(router, log)
	if err = registration.Register(ctx, w); err != nil {
		return nil, fmt.Errorf("register worker: %w", err)
	}

	runs := &inflight{}
	jobs := workers.NewWorkers(
		prober.Worker(cfg.Workers.ProbeInterval),
		service.NewClientSyncJob(registration, cfg.Workers.SyncInterval, log),
	)

	ui, err := tui.New(tui.Deps{
		Submissions:   services.SubmissionService,
		Records:       services.RecordStore,
		ReferenceData: services.ReferenceDataService,
		Sync:          trackedSync{next: registration, inflight: runs},
		Connectivity:  monitor,
		Worker:        channel.Connect(0),
	}, build, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{
		storages:     storages,
		services:     services,
		registration: registration,
		router:       router,
		channel:      channel,
		monitor:      monitor,
		jobs:         jobs,
		tui:          ui,
		registry:     registry,
		inflight:     runs,
		logger:       log,
	}, nil
}

// Run starts the background jobs and the worker message loop, blocks on the
// terminal page and tears everything down when it returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	go a.channel.Run(ctx, a.registration.HandleMessage)

	unsubscribe := a.monitor.OnOnline(func() {
		a.inflight.goReconcile(ctx, a.services.Reconciler)
	})

	a.jobs.Start(ctx)

	err := a.tui.Run(ctx)

	unsubscribe()
	a.jobs.Stop()
	cancel()
	a.inflight.close()
	a.router.Wait()

	a.logMetrics()

	if cErr := a.storages.Close(); cErr != nil {
		a.logger.Err(cErr).Str("func", "*App.Run").Msg("error closing local storage")
	}

	return err
}

// logMetrics writes the worker counters once on shutdown; the client has no
// HTTP endpoint to scrape.
func (a *App) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*App.logMetrics").Msg("error gathering metrics")
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			event := a.logger.Debug().Str("metric", mf.GetName())
			for _, l := range m.GetLabel() {
				event = event.Str(l.GetName(), l.GetValue())
			}
			event.Float64("value", m.GetCounter().GetValue()).Msg("worker metric")
		}
	}
}
