// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the ingestion server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP. The implementation ([NewHTTPServerAdapter]) is a resty client
// whose transport can be replaced; the client application plugs the worker's
// cache router in there so every page request is intercepted.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is]. Network failures and
// synthetic offline responses both surface as [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-agro-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the ingestion server.
type ServerAdapter interface {
	// Analyze submits one diagnosis for immediate classification.
	// POST /api/analyze-plant.
	Analyze(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error)

	// Sync submits a batch of queued records. A non-2xx status means the
	// batch as a whole was rejected. POST /api/sync.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)

	// PlantInfo fetches the classification taxonomy. GET /api/plant-info.
	PlantInfo(ctx context.Context) (models.PlantInfo, error)

	// Diagnoses fetches at most limit recent diagnoses. GET /api/diagnoses.
	Diagnoses(ctx context.Context, limit int) ([]models.DiagnosisResult, error)

	// Stats fetches aggregated counts. GET /api/stats.
	Stats(ctx context.Context) (models.Stats, error)

	// Version fetches the server version. GET /api/version.
	Version(ctx context.Context) (models.VersionInfo, error)
}
