// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal page of the client: it submits diagnoses,
// shows the offline queue and the connectivity banner, and listens to the
// worker's sync broadcasts.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps is everything the page talks to.
type Deps struct {
	Submissions   service.ClientSubmissionService
	Records       service.ClientRecordStore
	ReferenceData service.ClientReferenceDataService
	Sync          service.SyncEventHandler
	Connectivity  service.ConnectivityState
	// Worker is this page's end of the worker message channel.
	Worker *messaging.Client
}

type TUI struct {
	deps      Deps
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(deps Deps, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if deps.Submissions == nil || deps.Records == nil || deps.ReferenceData == nil ||
		deps.Sync == nil || deps.Connectivity == nil {
		return nil, errMissingDependency
	}

	return &TUI{deps: deps, buildInfo: buildInfo, logger: log.WithComponent("tui")}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newModel(ctx, t.deps, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	if t.deps.Worker != nil {
		go forwardBroadcasts(ctx, t.deps.Worker, program)
	}

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// forwardBroadcasts delivers worker messages to the program until the
// channel client is closed or ctx ends.
func forwardBroadcasts(ctx context.Context, client *messaging.Client, program *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-client.Messages():
			if !ok {
				return
			}
			program.Send(workerMsg{msg: msg})
		}
	}
}
