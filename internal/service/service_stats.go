// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/models"
)

type statsService struct {
	repo store.DiagnosisRepository

	logger *logger.Logger
}

func NewStatsService(repo store.DiagnosisRepository, logger *logger.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// Stats implements [StatsService]. DiseasesFound counts distinct
// (plant, disease) groups that are not healthy; HealthyPlants counts rows.
func (s *statsService) Stats(ctx context.Context) (models.Stats, error) {
	groups, err := s.repo.CountByPlantAndDisease(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("count diagnoses: %w", err)
	}

	stats := models.Stats{ByPlant: groups}
	plants := make(map[string]struct{})

	for _, g := range groups {
		stats.TotalDiagnoses += g.Count
		plants[g.PlantType] = struct{}{}

		if models.IsHealthy(g.Disease) {
			stats.HealthyPlants += g.Count
		} else {
			stats.DiseasesFound++
		}
	}
	stats.PlantTypes = len(plants)

	if stats.ByPlant == nil {
		stats.ByPlant = []models.PlantDiseaseCount{}
	}

	return stats, nil
}
