// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-agro-sync/models"
)

const (
	plantWikiBaseURL   = "https://pt.wikipedia.org/wiki/"
	diseaseInfoBaseURL = "https://www.embrapa.br/busca-de-noticias/-/noticia/buscar?q="

	defaultPlantEmoji  = "🌱"
	defaultHealthEmoji = "❓"
	defaultHealthColor = "gray"
)

// enrich turns a stored diagnosis into its display form using the taxonomy
// for emojis and colors.
func enrich(info models.PlantInfo, d models.Diagnosis) models.DiagnosisResult {
	healthy := models.IsHealthy(d.Disease)

	plantEmoji := info.PlantEmojis[d.PlantType]
	if plantEmoji == "" {
		plantEmoji = defaultPlantEmoji
	}

	key := models.HealthDiseased
	if healthy {
		key = models.HealthHealthy
	}
	healthEmoji, healthColor := defaultHealthEmoji, defaultHealthColor
	if status, ok := info.HealthStatus[key]; ok {
		if status.Emoji != "" {
			healthEmoji = status.Emoji
		}
		if status.Color != "" {
			healthColor = status.Color
		}
	}

	result := models.DiagnosisResult{
		ID:           strconv.FormatInt(d.ID, 10),
		PlantType:    d.PlantType,
		Disease:      d.Disease,
		Confidence:   int(math.Round(d.Confidence * 100)),
		PlantEmoji:   plantEmoji,
		HealthEmoji:  healthEmoji,
		HealthColor:  healthColor,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		UserLocation: d.UserLocation,
		Timestamp:    d.Timestamp,
		PlantWikiURL: plantWikiBaseURL + url.PathEscape(d.PlantType),
	}
	if !healthy {
		result.DiseaseInfoURL = diseaseInfoBaseURL + url.PathEscape(d.Disease)
	}

	return result
}
