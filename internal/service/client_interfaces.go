// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/models"
)

// ClientRecordStore is the offline queue. The whole collection is kept in
// memory and written to the local key-value table on every mutation; a
// failed write is logged and the in-memory state stays authoritative.
type ClientRecordStore interface {
	// Enqueue appends a pending record and returns its fresh LocalID.
	Enqueue(ctx context.Context, payload models.SubmissionPayload) string

	// ListPending returns unsynced records in insertion order.
	ListPending(ctx context.Context) []models.PendingRecord

	// MarkSynced flips Synced for the given LocalIDs and persists.
	// Unknown IDs are ignored.
	MarkSynced(ctx context.Context, localIDs ...string)

	// ClearAll empties the queue.
	ClearAll(ctx context.Context)

	// Load replaces the in-memory collection with the persisted one.
	Load(ctx context.Context) error

	// Counts reports pending and synced records.
	Counts() models.RecordCounts
}

// ClientReconciler submits the pending queue to the server.
type ClientReconciler interface {
	// Reconcile runs at most once at a time; a trigger that arrives while a
	// run is in progress returns [models.SyncStatusBusy] immediately.
	Reconcile(ctx context.Context) models.SyncOutcome
}

// ClientSubmissionService submits diagnoses, falling back to the offline
// queue when the server cannot be reached.
type ClientSubmissionService interface {
	Submit(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error)
}

// ClientReferenceDataService keeps the plant taxonomy available offline.
type ClientReferenceDataService interface {
	// Load fetches the taxonomy when online and stores a snapshot; when
	// offline or on failure it returns the last snapshot.
	Load(ctx context.Context) (models.PlantInfo, error)
	// Clear drops the snapshot.
	Clear(ctx context.Context) error
}

// ConnectivityState is the read side of the connectivity monitor.
type ConnectivityState interface {
	IsOnline() bool
}

// Broadcaster delivers worker→page messages.
type Broadcaster interface {
	Broadcast(msg messaging.Message) int
}

// SyncEventHandler dispatches background sync events to the worker.
type SyncEventHandler interface {
	HandleSync(ctx context.Context, tag string) (models.SyncOutcome, error)
}
