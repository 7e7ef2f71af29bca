// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-agro-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DiagnosisRepository persists diagnoses on the ingestion server.
type DiagnosisRepository interface {
	// SaveDiagnosis inserts d and returns it with ID and Timestamp assigned
	// by the database.
	SaveDiagnosis(ctx context.Context, d models.Diagnosis) (models.Diagnosis, error)
	// ListDiagnoses returns at most limit diagnoses, newest first.
	ListDiagnoses(ctx context.Context, limit uint64) ([]models.Diagnosis, error)
	// CountByPlantAndDisease groups all diagnoses by plant type and disease,
	// largest groups first.
	CountByPlantAndDisease(ctx context.Context) ([]models.PlantDiseaseCount, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
