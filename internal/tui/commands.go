// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/internal/worker"
	"github.com/MKhiriev/go-agro-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

const workerRequestTimeout = 2 * time.Second

func (m model) cmdSubmit(payload models.SubmissionPayload) tea.Cmd {
	ctx := m.ctx
	svc := m.deps.Submissions

	return func() tea.Msg {
		result, err := svc.Submit(ctx, payload)
		return submitDoneMsg{result: result, err: err}
	}
}

// cmdSync fires the same event as the background sync job.
func (m model) cmdSync() tea.Cmd {
	ctx := m.ctx
	handler := m.deps.Sync

	return func() tea.Msg {
		outcome, err := handler.HandleSync(ctx, worker.SyncTag)
		return syncDoneMsg{outcome: outcome, err: err}
	}
}

func (m model) cmdLoadReferenceData() tea.Cmd {
	ctx := m.ctx
	svc := m.deps.ReferenceData

	return func() tea.Msg {
		info, err := svc.Load(ctx)
		return referenceDataMsg{info: info, err: err}
	}
}

func (m model) cmdClear() tea.Cmd {
	ctx := m.ctx
	records := m.deps.Records
	referenceData := m.deps.ReferenceData

	return func() tea.Msg {
		records.ClearAll(ctx)
		return clearedMsg{err: referenceData.Clear(ctx)}
	}
}

// cmdWorkerVersion asks the active worker for its cache version.
func (m model) cmdWorkerVersion() tea.Cmd {
	if m.deps.Worker == nil {
		return nil
	}
	ctx := m.ctx
	client := m.deps.Worker

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, workerRequestTimeout)
		defer cancel()

		reply, err := client.Request(ctx, messaging.Message{Type: messaging.GetVersion})
		if err != nil || reply.Error != "" {
			return versionMsg{version: ""}
		}
		return versionMsg{version: reply.Version}
	}
}
