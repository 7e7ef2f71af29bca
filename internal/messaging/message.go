// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package messaging is the control plane between the interactive page and
// the background worker.
//
// Page→worker messages go through a FIFO inbox drained by a single
// goroutine; GET_VERSION additionally carries a reply port. Worker→page
// messages are broadcast to every connected page without blocking: a page
// that is not connected, or whose buffer is full, misses the message.
package messaging

import (
	"github.com/MKhiriev/go-agro-sync/models"
)

// MessageType tags a control message.
type MessageType string

const (
	// SkipWaiting forces activation of a waiting worker revision.
	SkipWaiting MessageType = "SKIP_WAITING"
	// GetVersion asks for the active cache namespace version tag.
	GetVersion MessageType = "GET_VERSION"
	// CacheURLs primes the dynamic cache with the listed URLs.
	CacheURLs MessageType = "CACHE_URLS"
	// SyncSuccess carries the outcome of a completed reconciliation run.
	SyncSuccess MessageType = "SYNC_SUCCESS"
	// SyncError carries the outcome of a failed reconciliation run.
	SyncError MessageType = "SYNC_ERROR"
)

// Message is one control message. Only the fields relevant to Type are set.
type Message struct {
	Type    MessageType         `json:"type"`
	URLs    []string            `json:"urls,omitempty"`
	Version string              `json:"version,omitempty"`
	Outcome *models.SyncOutcome `json:"outcome,omitempty"`
	Error   string              `json:"error,omitempty"`

	reply chan Message
}

// NewSyncMessage builds the broadcast for a finished reconciliation run.
func NewSyncMessage(outcome models.SyncOutcome) Message {
	msg := Message{Type: SyncSuccess, Outcome: &outcome}
	if outcome.Status == models.SyncStatusFailed {
		msg.Type = SyncError
		msg.Error = outcome.Error
	}
	return msg
}
