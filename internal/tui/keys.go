// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	analyze   key.Binding
	sync      key.Binding
	reload    key.Binding
	clear     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	quit      key.Binding

	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	analyze:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analyze")),
	sync:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload plants")),
	clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear data")),
	copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}

func mainHelp() string {
	return helpLine(keys.analyze, keys.sync, keys.reload, keys.clear, keys.copy, keys.buildInfo, keys.quit)
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
