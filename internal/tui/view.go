// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/charmbracelet/lipgloss"
)

const maxPendingShown = 5

func renderPage(title, data, hotKeys string) string {
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		data,
		"",
		helpStyle.Render(hotKeys),
	))
}

func (m model) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.cacheVersion)
	}
	if m.formActive {
		return renderPage("ANALYZE PLANT", m.form.View()+m.footer(), "")
	}
	if m.confirmClear {
		box := overlayBoxStyle.Render("Delete all offline records and plant data?\n\n" +
			fmt.Sprintf("%d pending, %d synced", m.counts.Pending, m.counts.Synced))
		return renderPage("CLEAR DATA", box, "y: yes  n: no")
	}

	var b strings.Builder
	b.WriteString(bannerStyle.Render(service.StatusBanner(m.online, m.counts)))
	b.WriteString("\n")
	b.WriteString(m.plantLine())
	b.WriteString("\n")

	if m.last != nil {
		b.WriteString("\n")
		b.WriteString(renderResult(*m.last))
	}

	if len(m.pending) > 0 {
		b.WriteString("\n")
		b.WriteString(renderPending(m.pending))
	}

	b.WriteString(m.footer())

	return renderPage("🌿 AGROIA", b.String(), mainHelp())
}

func (m model) plantLine() string {
	switch {
	case m.plantClasses == 0:
		return "Plant data: not loaded"
	case m.plantOffline:
		return fmt.Sprintf("Plant data: %d classes (saved copy)", m.plantClasses)
	default:
		return fmt.Sprintf("Plant data: %d classes", m.plantClasses)
	}
}

func (m model) footer() string {
	var b strings.Builder

	switch {
	case m.submitting:
		b.WriteString("\n" + m.spinner.View() + " Analyzing...")
	case m.syncing:
		b.WriteString("\n" + m.spinner.View() + " Syncing...")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	if b.Len() == 0 {
		return ""
	}
	return "\n" + b.String()
}

func renderResult(r models.DiagnosisResult) string {
	var b strings.Builder

	name := r.PortugueseName
	if name == "" {
		name = r.Disease
	}

	fmt.Fprintf(&b, "%s %s\n", r.PlantEmoji, r.PlantType)
	b.WriteString(healthStyle(r.HealthColor).Render(r.HealthEmoji + " " + name))
	b.WriteString("\n")

	if !r.Offline {
		fmt.Fprintf(&b, "Confidence: %d%%", r.Confidence)
		if r.Accuracy > 0 {
			fmt.Fprintf(&b, "  Model accuracy: %d%%", r.Accuracy)
		}
		b.WriteString("\n")
	}
	if r.UserLocation != "" {
		fmt.Fprintf(&b, "Location: %s\n", r.UserLocation)
	}
	fmt.Fprintf(&b, "Coordinates: %.5f, %.5f\n", r.Latitude, r.Longitude)

	return b.String()
}

func renderPending(records []models.PendingRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Waiting for sync (%d):\n", len(records))
	for i, rec := range records {
		if i == maxPendingShown {
			fmt.Fprintf(&b, "  ... and %d more\n", len(records)-maxPendingShown)
			break
		}
		fmt.Fprintf(&b, "  ⏳ %s  %s  %.4f, %.4f\n",
			rec.LocalID, rec.Payload.Timestamp.Format("02.01 15:04"), rec.Payload.Latitude, rec.Payload.Longitude)
	}

	return b.String()
}
