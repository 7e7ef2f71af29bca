// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/models"
)

type submitDoneMsg struct {
	result models.DiagnosisResult
	err    error
}

type syncDoneMsg struct {
	outcome models.SyncOutcome
	err     error
}

type referenceDataMsg struct {
	info models.PlantInfo
	err  error
}

type clearedMsg struct {
	err error
}

type versionMsg struct {
	version string
}

// workerMsg wraps a broadcast from the worker.
type workerMsg struct {
	msg messaging.Message
}

type refreshMsg struct{}

type clearStatusMsg struct{}
