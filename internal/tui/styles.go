// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	bannerStyle     = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// healthColors maps the server's health color names to terminal colors.
var healthColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("10"),
	"red":    lipgloss.Color("9"),
	"yellow": lipgloss.Color("11"),
	"gray":   lipgloss.Color("8"),
}

func healthStyle(color string) lipgloss.Style {
	c, ok := healthColors[color]
	if !ok {
		c = healthColors["gray"]
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
