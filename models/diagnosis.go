// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Analysis is the raw output of a classifier for one image.
type Analysis struct {
	PlantType      string
	Disease        string
	PortugueseName string
	// Confidence is in [0, 1].
	Confidence float64
	// Accuracy is the reported model accuracy in percent.
	Accuracy float64
}

// Diagnosis is a persisted diagnosis row.
type Diagnosis struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	PlantType    string    `json:"plant_type"`
	Disease      string    `json:"disease"`
	Confidence   float64   `json:"confidence"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Timestamp    time.Time `json:"timestamp"`
	Synced       bool      `json:"synced"`
	ImageHash    string    `json:"image_hash,omitempty"`
	UserLocation string    `json:"user_location"`
}

// DiagnosisResult is the enriched diagnosis returned to clients.
//
// Confidence is a rounded percentage here, unlike [Diagnosis.Confidence].
type DiagnosisResult struct {
	ID             string    `json:"id"`
	PlantType      string    `json:"plant_type"`
	Disease        string    `json:"disease"`
	PortugueseName string    `json:"portuguese_name,omitempty"`
	Confidence     int       `json:"confidence"`
	Accuracy       int       `json:"accuracy,omitempty"`
	PlantEmoji     string    `json:"plant_emoji"`
	HealthEmoji    string    `json:"health_emoji"`
	HealthColor    string    `json:"health_color"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	UserLocation   string    `json:"user_location,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	PlantWikiURL   string    `json:"plant_wiki_url,omitempty"`
	DiseaseInfoURL string    `json:"disease_info_url,omitempty"`
	// Offline marks a placeholder result for a submission that was queued
	// locally and has not been analyzed yet.
	Offline bool `json:"offline,omitempty"`
}

// DiseaseHealthy is the disease label stored for plants without a disease.
const DiseaseHealthy = "healthy"

// IsHealthy reports whether a disease label denotes a healthy plant. The
// Portuguese label is accepted for rows written by older clients.
func IsHealthy(disease string) bool {
	return disease == DiseaseHealthy || disease == "Saudável"
}
