// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/worker"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusBanner(t *testing.T) {
	tests := []struct {
		name   string
		online bool
		counts models.RecordCounts
		want   string
	}{
		{"offline with queue", false, models.RecordCounts{Pending: 2}, "📱 Offline mode: 2 items waiting for connection"},
		{"offline empty", false, models.RecordCounts{}, "📱 Offline mode"},
		{"online with one", true, models.RecordCounts{Pending: 1, Synced: 4}, "🔄 1 item waiting for sync"},
		{"online synced", true, models.RecordCounts{Synced: 4}, "✅ All data synced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusBanner(tt.online, tt.counts))
		})
	}
}

func TestSyncStatusText(t *testing.T) {
	assert.Equal(t, "✅ 2 of 3 items synced", SyncStatusText(models.SyncOutcome{Status: models.SyncStatusCompleted, Total: 3, SuccessCount: 2}))
	assert.Equal(t, "❌ Sync failed", SyncStatusText(models.SyncOutcome{Status: models.SyncStatusFailed}))
	assert.Equal(t, "🔄 Sync already in progress", SyncStatusText(models.SyncOutcome{Status: models.SyncStatusBusy}))
}

// ── Background sync job ──────────────────────────────────────────────────────

type countingSyncHandler struct {
	calls atomic.Int32
	tag   atomic.Value
}

func (h *countingSyncHandler) HandleSync(_ context.Context, tag string) (models.SyncOutcome, error) {
	h.calls.Add(1)
	h.tag.Store(tag)
	return models.SyncOutcome{Status: models.SyncStatusNothingPending}, nil
}

func TestClientSyncJob_FiresSyncTag(t *testing.T) {
	h := &countingSyncHandler{}
	job := NewClientSyncJob(h, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	assert.Eventually(t, func() bool { return h.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Equal(t, worker.SyncTag, h.tag.Load())

	stopped := h.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, h.calls.Load())
}
