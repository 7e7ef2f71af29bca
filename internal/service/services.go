// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/models"
)

// Services bundles the ingestion server's business logic.
type Services struct {
	DiagnosisService DiagnosisService
	SyncService      SyncService
	StatsService     StatsService
	PlantInfoService PlantInfoService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	plantInfo, err := NewPlantInfoService()
	if err != nil {
		return nil, fmt.Errorf("plant info service: %w", err)
	}

	classifier, err := NewSimulatedClassifier(plantInfo, nil)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	diagnoses := NewDiagnosisService(storages.DiagnosisRepository, classifier, plantInfo, logger)

	return &Services{
		DiagnosisService: NewDiagnosisValidationService().Wrap(diagnoses),
		SyncService:      NewSyncService(diagnoses, logger),
		StatsService:     NewStatsService(storages.DiagnosisRepository, logger),
		PlantInfoService: plantInfo,
		AppInfoService:   appInfo,
	}, nil
}
