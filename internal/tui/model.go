// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshInterval = time.Second
	statusTTL       = 5 * time.Second
)

type model struct {
	ctx       context.Context
	deps      Deps
	buildInfo models.AppBuildInfo

	readFile  func(string) ([]byte, error)
	writeClip func(string) error

	online       bool
	counts       models.RecordCounts
	pending      []models.PendingRecord
	plantClasses int
	plantOffline bool
	cacheVersion string

	last    *models.DiagnosisResult
	status  string
	errMsg  string
	spinner spinner.Model

	submitting bool
	syncing    bool

	formActive    bool
	form          analyzeForm
	confirmClear  bool
	showBuildInfo bool
}

func newModel(ctx context.Context, deps Deps, buildInfo models.AppBuildInfo) model {
	m := model{
		ctx:       ctx,
		deps:      deps,
		buildInfo: buildInfo,
		readFile:  os.ReadFile,
		writeClip: clipboard.WriteAll,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.cmdLoadReferenceData(),
		m.cmdWorkerVersion(),
		tickRefresh(),
	)
}

// refresh re-reads the in-memory state of the connectivity monitor and the
// record store.
func (m *model) refresh() {
	m.online = m.deps.Connectivity.IsOnline()
	m.counts = m.deps.Records.Counts()
	m.pending = m.deps.Records.ListPending(m.ctx)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshMsg:
		m.refresh()
		return m, tickRefresh()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case submitDoneMsg:
		m.submitting = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		result := msg.result
		m.last = &result
		m.errMsg = ""
		if result.Offline {
			return m.withStatus("📱 Saved offline, it will be analyzed when the connection returns")
		}
		return m.withStatus("✅ Analysis complete")
	case syncDoneMsg:
		m.syncing = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m.withStatus(service.SyncStatusText(msg.outcome))
	case workerMsg:
		return m.handleWorkerMessage(msg.msg)
	case referenceDataMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.plantClasses = len(msg.info.Classes)
		m.plantOffline = msg.info.OfflineMode
		return m, nil
	case clearedMsg:
		m.refresh()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.last = nil
		m.plantClasses = 0
		return m.withStatus("🗑 Local data cleared")
	case versionMsg:
		m.cacheVersion = msg.version
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formActive {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.confirmClear:
		return m.updateConfirmClear(keyMsg)
	case m.formActive:
		return m.updateForm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.analyze):
		if m.submitting {
			return m, nil
		}
		m.form = newAnalyzeForm()
		m.formActive = true
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, m.cmdSync()
	case key.Matches(keyMsg, keys.reload):
		return m, m.cmdLoadReferenceData()
	case key.Matches(keyMsg, keys.clear):
		m.confirmClear = true
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		return m.copyLastLink()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	}

	return m, nil
}

func (m model) updateConfirmClear(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmClear = false
		return m, m.cmdClear()
	case key.Matches(keyMsg, keys.no):
		m.confirmClear = false
	}
	return m, nil
}

func (m model) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.formActive = false
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		payload, err := m.form.payload(m.readFile)
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.formActive = false
		m.submitting = true
		m.errMsg = ""
		return m, m.cmdSubmit(payload)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

func (m model) handleWorkerMessage(msg messaging.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case messaging.SyncSuccess, messaging.SyncError:
		m.refresh()
		if msg.Outcome == nil {
			return m, nil
		}
		if msg.Type == messaging.SyncError && msg.Error != "" {
			m.errMsg = msg.Error
		}
		return m.withStatus(service.SyncStatusText(*msg.Outcome))
	}
	return m, nil
}

func (m model) copyLastLink() (tea.Model, tea.Cmd) {
	if m.last == nil {
		return m.withStatus("Nothing to copy")
	}

	link := m.last.DiseaseInfoURL
	if link == "" {
		link = m.last.PlantWikiURL
	}
	if link == "" {
		return m.withStatus("Nothing to copy")
	}

	if err := m.writeClip(link); err != nil {
		m.errMsg = "Copy failed: " + err.Error()
		return m, nil
	}
	return m.withStatus("📋 Link copied")
}

// withStatus shows s and clears it after statusTTL.
func (m model) withStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func tickRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}
