// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PlantDiseaseCount is one group of the statistics endpoint.
type PlantDiseaseCount struct {
	PlantType     string  `json:"plant_type"`
	Disease       string  `json:"disease"`
	Count         int64   `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Stats aggregates all stored diagnoses.
type Stats struct {
	TotalDiagnoses int64               `json:"total_diagnoses"`
	PlantTypes     int                 `json:"plant_types"`
	DiseasesFound  int                 `json:"diseases_found"`
	HealthyPlants  int64               `json:"healthy_plants"`
	ByPlant        []PlantDiseaseCount `json:"by_plant"`
}
