// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/worker"
	"github.com/MKhiriev/go-agro-sync/internal/workers"
)

// NewClientSyncJob creates the background sync trigger: every interval it
// fires a "sync-diagnoses" event at the worker. The job is idle until Start
// is called.
func NewClientSyncJob(handler SyncEventHandler, interval time.Duration, log *logger.Logger) workers.Worker {
	return workers.NewTickerWorker("background-sync", interval, func(ctx context.Context) {
		outcome, err := handler.HandleSync(ctx, worker.SyncTag)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "clientSyncJob").Msg("background sync failed")
			return
		}
		logger.FromContext(ctx).Debug().Str("status", string(outcome.Status)).Msg("background sync finished")
	}, log)
}
