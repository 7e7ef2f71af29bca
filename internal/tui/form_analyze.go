// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPath = iota
	fieldLatitude
	fieldLongitude
	fieldLocation
)

// analyzeForm collects the photo path and the capture coordinates.
type analyzeForm struct {
	inputs []textinput.Model
	focus  int
}

func newAnalyzeForm() analyzeForm {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldPath].Placeholder = "/path/to/leaf.jpg"
	inputs[fieldLatitude].Placeholder = "-15.79"
	inputs[fieldLongitude].Placeholder = "-47.88"
	inputs[fieldLocation].Placeholder = "Brasília, DF"
	inputs[fieldPath].Focus()

	return analyzeForm{inputs: inputs}
}

func (f analyzeForm) update(msg tea.Msg) (analyzeForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return f.moveFocus(1), nil
		case key.Matches(keyMsg, keys.backtab):
			return f.moveFocus(-1), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f analyzeForm) moveFocus(delta int) analyzeForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

// payload reads the image with readFile and builds the submission. Empty
// coordinates mean 0.
func (f analyzeForm) payload(readFile func(string) ([]byte, error)) (models.SubmissionPayload, error) {
	path := strings.TrimSpace(f.inputs[fieldPath].Value())
	if path == "" {
		return models.SubmissionPayload{}, errEmptyPath
	}

	lat, err := parseCoordinate(f.inputs[fieldLatitude].Value())
	if err != nil {
		return models.SubmissionPayload{}, errInvalidLatitude
	}
	lon, err := parseCoordinate(f.inputs[fieldLongitude].Value())
	if err != nil {
		return models.SubmissionPayload{}, errInvalidLongitude
	}

	raw, err := readFile(path)
	if err != nil {
		return models.SubmissionPayload{}, fmt.Errorf("read image: %w", err)
	}
	image, err := dataURL(raw)
	if err != nil {
		return models.SubmissionPayload{}, err
	}

	return models.SubmissionPayload{
		Image:        image,
		Latitude:     lat,
		Longitude:    lon,
		UserLocation: strings.TrimSpace(f.inputs[fieldLocation].Value()),
	}, nil
}

func (f analyzeForm) View() string {
	out := titleStyle.Render("Analyze plant") + "\n\n"
	out += "Photo:     [" + f.inputs[fieldPath].View() + "]\n"
	out += "Latitude:  [" + f.inputs[fieldLatitude].View() + "]\n"
	out += "Longitude: [" + f.inputs[fieldLongitude].View() + "]\n"
	out += "Location:  [" + f.inputs[fieldLocation].View() + "]\n\n"
	out += helpStyle.Render("esc cancel  tab next field  enter send")
	return overlayBoxStyle.Render(out)
}

func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// dataURL encodes raw as "data:image/<type>;base64,...". The content type is
// sniffed, the file extension is ignored.
func dataURL(raw []byte) (string, error) {
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", errNotAnImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
