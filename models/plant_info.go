// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatus describes how a health class is displayed.
type HealthStatus struct {
	PT    string `json:"pt"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// PlantInfo is the classification taxonomy served by the reference-data
// endpoint. Class names use the "Plant___Disease" form.
type PlantInfo struct {
	Classes      []string                `json:"classes"`
	ClassesPT    []string                `json:"classes_pt"`
	PlantEmojis  map[string]string       `json:"plant_emojis"`
	HealthStatus map[string]HealthStatus `json:"health_status"`
	Accuracy     float64                 `json:"accuracy"`
	OfflineMode  bool                    `json:"offline_mode,omitempty"`
}

const (
	// HealthHealthy is the HealthStatus key for healthy plants.
	HealthHealthy = "healthy"
	// HealthDiseased is the HealthStatus key for diseased plants.
	HealthDiseased = "diseased"
)

// DefaultPlantInfo returns the minimal built-in reference dataset served when
// neither the network nor the cache can provide one.
func DefaultPlantInfo() PlantInfo {
	return PlantInfo{
		Classes:     []string{"Apple___healthy", "Tomato___healthy"},
		ClassesPT:   []string{"Maçã - Saudável", "Tomate - Saudável"},
		PlantEmojis: map[string]string{"Apple": "🍎", "Tomato": "🍅"},
		HealthStatus: map[string]HealthStatus{
			HealthHealthy:  {PT: "Saudável", Emoji: "✅", Color: "green"},
			HealthDiseased: {PT: "Doente", Emoji: "⚠️", Color: "red"},
		},
		Accuracy:    94.92,
		OfflineMode: true,
	}
}
