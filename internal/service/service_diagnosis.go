// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

const (
	DefaultUserID       = "anonymous"
	DefaultUserLocation = "Não informado"

	DefaultListLimit uint64 = 100
	MaxListLimit     uint64 = 1000
)

type diagnosisService struct {
	repo       store.DiagnosisRepository
	classifier Classifier
	plantInfo  PlantInfoService

	logger *logger.Logger
}

func NewDiagnosisService(repo store.DiagnosisRepository, classifier Classifier, plantInfo PlantInfoService, logger *logger.Logger) DiagnosisService {
	return &diagnosisService{
		repo:       repo,
		classifier: classifier,
		plantInfo:  plantInfo,
		logger:     logger,
	}
}

// Analyze implements [DiagnosisService]. Only the MD5 hash of the image is
// stored, never the image itself.
func (s *diagnosisService) Analyze(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error) {
	log := logger.FromContext(ctx)

	analysis, err := s.classifier.Classify(ctx, payload.Image)
	if err != nil {
		log.Err(err).Str("func", "*diagnosisService.Analyze").Msg("classification failed")
		return models.DiagnosisResult{}, fmt.Errorf("%w: %w", ErrClassificationFailed, err)
	}

	diagnosis := models.Diagnosis{
		UserID:       orDefault(payload.UserID, DefaultUserID),
		PlantType:    analysis.PlantType,
		Disease:      analysis.Disease,
		Confidence:   analysis.Confidence,
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		Synced:       true,
		ImageHash:    utils.ImageHash(payload.Image),
		UserLocation: orDefault(payload.UserLocation, DefaultUserLocation),
	}

	saved, err := s.repo.SaveDiagnosis(ctx, diagnosis)
	if err != nil {
		log.Err(err).Str("func", "*diagnosisService.Analyze").Msg("error saving diagnosis")
		return models.DiagnosisResult{}, fmt.Errorf("%w: %w", ErrDiagnosisNotSaved, err)
	}

	result := enrich(s.plantInfo.PlantInfo(ctx), saved)
	result.PortugueseName = analysis.PortugueseName
	result.Accuracy = int(math.Round(analysis.Accuracy))

	return result, nil
}

// List implements [DiagnosisService]. limit is clamped to [MaxListLimit].
func (s *diagnosisService) List(ctx context.Context, limit uint64) ([]models.DiagnosisResult, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	rows, err := s.repo.ListDiagnoses(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list diagnoses: %w", err)
	}

	info := s.plantInfo.PlantInfo(ctx)
	results := make([]models.DiagnosisResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, enrich(info, row))
	}

	return results, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
