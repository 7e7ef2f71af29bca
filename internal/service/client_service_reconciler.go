// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/internal/validators"
	"github.com/MKhiriev/go-agro-sync/models"
)

const msgNoResult = "no result reported for record"

// reconciler drives IDLE → SYNCING → IDLE. There is no retry loop: records
// that fail stay pending until the next trigger.
type reconciler struct {
	records     ClientRecordStore
	adapter     adapter.ServerAdapter
	state       ConnectivityState
	broadcaster Broadcaster

	syncing atomic.Bool

	logger *logger.Logger
}

func NewClientReconciler(records ClientRecordStore, serverAdapter adapter.ServerAdapter, state ConnectivityState, broadcaster Broadcaster, logger *logger.Logger) ClientReconciler {
	return &reconciler{
		records:     records,
		adapter:     serverAdapter,
		state:       state,
		broadcaster: broadcaster,
		logger:      logger.WithComponent("reconciler"),
	}
}

// Reconcile implements [ClientReconciler]. Every run that reaches the server
// is broadcast as SYNC_SUCCESS or SYNC_ERROR.
func (r *reconciler) Reconcile(ctx context.Context) models.SyncOutcome {
	if !r.syncing.CompareAndSwap(false, true) {
		return models.SyncOutcome{Status: models.SyncStatusBusy}
	}
	defer r.syncing.Store(false)

	if !r.state.IsOnline() {
		return models.SyncOutcome{Status: models.SyncStatusOffline}
	}

	pending := r.records.ListPending(ctx)
	if len(pending) == 0 {
		return models.SyncOutcome{Status: models.SyncStatusNothingPending}
	}

	outcome := r.submit(ctx, pending)
	r.broadcaster.Broadcast(messaging.NewSyncMessage(outcome))

	return outcome
}

// submit sends pending in batches of at most [validators.MaxSyncBatch]. The
// results of a batch are applied before the next one is sent; a failed
// batch ends the run and leaves the later ones untouched.
func (r *reconciler) submit(ctx context.Context, pending []models.PendingRecord) models.SyncOutcome {
	r.logger.Info().Int("records", len(pending)).Msg("submitting pending records")

	outcome := models.SyncOutcome{
		Status:  models.SyncStatusCompleted,
		Total:   len(pending),
		Results: make([]models.SyncItemOutcome, 0, len(pending)),
	}

	for batch := range slices.Chunk(pending, validators.MaxSyncBatch) {
		results, err := r.submitBatch(ctx, batch)
		if err != nil {
			r.logger.Err(err).Str("func", "*reconciler.submit").Int("sent", len(outcome.Results)).Msg("sync request failed")
			outcome.Status = models.SyncStatusFailed
			outcome.Error = err.Error()
			break
		}

		for _, result := range results {
			if result.Success {
				outcome.SuccessCount++
			}
		}
		outcome.Results = append(outcome.Results, results...)
	}

	if len(outcome.Results) == 0 {
		outcome.Results = nil
	}

	r.logger.Info().Int("total", outcome.Total).Int("success", outcome.SuccessCount).Msg("reconciliation finished")
	return outcome
}

func (r *reconciler) submitBatch(ctx context.Context, batch []models.PendingRecord) ([]models.SyncItemOutcome, error) {
	req := models.SyncRequest{Records: make([]models.PendingRecordPayload, 0, len(batch))}
	for _, p := range batch {
		req.Records = append(req.Records, models.PendingRecordPayload{SubmissionPayload: p.Payload, LocalID: p.LocalID})
	}

	resp, err := r.adapter.Sync(ctx, req)
	if err != nil {
		return nil, err
	}

	reported := make(map[string]models.SyncItemResult, len(resp.Results))
	for _, item := range resp.Results {
		reported[item.ID] = item
	}

	results := make([]models.SyncItemOutcome, 0, len(batch))
	for _, p := range batch {
		item, ok := reported[p.LocalID]
		result := models.SyncItemOutcome{LocalID: p.LocalID, Success: ok && item.Success, Error: item.Error}
		if !ok {
			result.Error = msgNoResult
		}

		if result.Success {
			// each call persists before the next record is handled
			r.records.MarkSynced(ctx, p.LocalID)
		}
		results = append(results, result)
	}

	return results, nil
}
