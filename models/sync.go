// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncRequest is the batch sent to the remote ingestion endpoint.
type SyncRequest struct {
	Records []PendingRecordPayload `json:"records"`
}

// SyncItemResult is the server verdict for one record of a batch.
// ID echoes the submitted LocalID.
type SyncItemResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error,omitempty"`
}

// SyncResponse is returned by the remote ingestion endpoint.
type SyncResponse struct {
	Message string           `json:"message"`
	Results []SyncItemResult `json:"results"`
	Total   int              `json:"total"`
	Success int              `json:"success"`
}

// SyncStatus describes how a reconciliation run ended.
type SyncStatus string

const (
	// SyncStatusOffline means the run was skipped because the client is offline.
	SyncStatusOffline SyncStatus = "offline"
	// SyncStatusNothingPending means there was nothing to submit.
	SyncStatusNothingPending SyncStatus = "nothing_pending"
	// SyncStatusBusy means another run was already in progress and this
	// trigger was coalesced into it.
	SyncStatusBusy SyncStatus = "busy"
	// SyncStatusCompleted means the batch reached the server and per-item
	// results were applied.
	SyncStatusCompleted SyncStatus = "completed"
	// SyncStatusFailed means a batch did not reach the server or the server
	// rejected it as a whole. Records of that batch and of the batches after
	// it were not mutated.
	SyncStatusFailed SyncStatus = "failed"
)

// SyncItemOutcome is the per-record part of a [SyncOutcome].
type SyncItemOutcome struct {
	LocalID string `json:"localId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SyncOutcome is the report of one reconciliation run.
type SyncOutcome struct {
	Status       SyncStatus        `json:"status"`
	Total        int               `json:"total"`
	SuccessCount int               `json:"successCount"`
	Results      []SyncItemOutcome `json:"results,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// Submitted reports whether the run reached the remote ingestion endpoint
// (successfully or not).
func (o SyncOutcome) Submitted() bool {
	return o.Status == SyncStatusCompleted || o.Status == SyncStatusFailed
}
