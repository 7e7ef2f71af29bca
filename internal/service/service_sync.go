// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/validators"
	"github.com/MKhiriev/go-agro-sync/models"
)

const syncCompletedMessage = "sync completed"

// syncService stores each record of a batch through the diagnosis service.
//
// Records are not deduplicated by LocalID: a record submitted twice is
// stored twice. Delivery from the client is at-least-once.
type syncService struct {
	diagnoses DiagnosisService
	validator validators.Validator

	logger *logger.Logger
}

func NewSyncService(diagnoses DiagnosisService, logger *logger.Logger) SyncService {
	return &syncService{
		diagnoses: diagnoses,
		validator: validators.NewDiagnosisValidator(),
		logger:    logger,
	}
}

// Ingest implements [SyncService]. Result IDs echo the submitted LocalIDs
// in request order.
func (s *syncService) Ingest(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp := models.SyncResponse{
		Message: syncCompletedMessage,
		Results: make([]models.SyncItemResult, 0, len(req.Records)),
		Total:   len(req.Records),
	}

	for _, record := range req.Records {
		if err := ctx.Err(); err != nil {
			return models.SyncResponse{}, err
		}

		item := models.SyncItemResult{ID: record.LocalID}

		err := s.validator.Validate(ctx, record)
		if err == nil {
			_, err = s.diagnoses.Analyze(ctx, record.SubmissionPayload)
		}

		if err != nil {
			log.Warn().Err(err).Str("func", "*syncService.Ingest").Str("local_id", record.LocalID).Msg("record rejected")
			item.Error = err.Error()
		} else {
			item.Success = true
			resp.Success++
		}

		resp.Results = append(resp.Results, item)
	}

	log.Info().Int("total", resp.Total).Int("success", resp.Success).Msg("sync batch ingested")
	return resp, nil
}
