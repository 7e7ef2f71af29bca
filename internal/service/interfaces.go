// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-agro-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Classifier identifies plant and disease on an image.
type Classifier interface {
	Classify(ctx context.Context, image string) (models.Analysis, error)
}

// DiagnosisService analyzes submissions and serves stored diagnoses.
type DiagnosisService interface {
	// Analyze classifies the submitted image, stores the diagnosis and
	// returns it enriched with display metadata.
	Analyze(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error)

	// List returns the newest diagnoses first. A zero limit means the default.
	List(ctx context.Context, limit uint64) ([]models.DiagnosisResult, error)
}

// SyncService ingests batches of records queued by offline clients.
type SyncService interface {
	// Ingest processes every record independently. Only a malformed batch
	// is an error; per-record failures are reported in the results.
	Ingest(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

type StatsService interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// PlantInfoService serves the classification taxonomy.
type PlantInfoService interface {
	PlantInfo(ctx context.Context) models.PlantInfo
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionInfo
}
