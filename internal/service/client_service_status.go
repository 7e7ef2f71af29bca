// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-agro-sync/models"
)

// StatusBanner is the one-line connectivity and queue summary.
func StatusBanner(online bool, counts models.RecordCounts) string {
	switch {
	case !online && counts.Pending > 0:
		return fmt.Sprintf("📱 Offline mode: %s waiting for connection", plural(counts.Pending, "item"))
	case !online:
		return "📱 Offline mode"
	case counts.Pending > 0:
		return fmt.Sprintf("🔄 %s waiting for sync", plural(counts.Pending, "item"))
	default:
		return "✅ All data synced"
	}
}

// SyncStatusText describes a finished reconciliation run.
func SyncStatusText(o models.SyncOutcome) string {
	switch o.Status {
	case models.SyncStatusOffline:
		return "📱 Offline mode, sync postponed"
	case models.SyncStatusNothingPending:
		return "✅ All data synced"
	case models.SyncStatusBusy:
		return "🔄 Sync already in progress"
	case models.SyncStatusFailed:
		return "❌ Sync failed"
	default:
		return fmt.Sprintf("✅ %d of %s synced", o.SuccessCount, plural(o.Total, "item"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
