// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/validators"
	"github.com/MKhiriev/go-agro-sync/models"
)

// Placeholder shown for a submission that waits in the queue.
const (
	pendingPlantType   = "Tomate"
	pendingDisease     = "Análise Pendente"
	pendingPlantEmoji  = "🍅"
	pendingHealthEmoji = "⏳"
	pendingHealthColor = "yellow"
)

type clientSubmissionService struct {
	records   ClientRecordStore
	adapter   adapter.ServerAdapter
	state     ConnectivityState
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientSubmissionService(records ClientRecordStore, serverAdapter adapter.ServerAdapter, state ConnectivityState, logger *logger.Logger) ClientSubmissionService {
	return &clientSubmissionService{
		records:   records,
		adapter:   serverAdapter,
		state:     state,
		validator: validators.NewDiagnosisValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Submit sends payload for analysis when online. When offline, or when the
// request fails in transport, the payload is queued and a placeholder
// result with Offline set is returned. Server errors are not queued.
func (s *clientSubmissionService) Submit(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.DiagnosisResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if payload.Timestamp.IsZero() {
		payload.Timestamp = s.now().UTC()
	}

	if !s.state.IsOnline() {
		return s.enqueue(ctx, payload), nil
	}

	result, err := s.adapter.Analyze(ctx, payload)
	if errors.Is(err, adapter.ErrTransport) {
		s.logger.Warn().Err(err).Str("func", "*clientSubmissionService.Submit").Msg("server unreachable, queueing submission")
		return s.enqueue(ctx, payload), nil
	}
	if err != nil {
		return models.DiagnosisResult{}, mapAdapterError(err)
	}

	return result, nil
}

func (s *clientSubmissionService) enqueue(ctx context.Context, payload models.SubmissionPayload) models.DiagnosisResult {
	id := s.records.Enqueue(ctx, payload)

	return models.DiagnosisResult{
		ID:             id,
		PlantType:      pendingPlantType,
		Disease:        pendingDisease,
		PortugueseName: pendingPlantType + " - " + pendingDisease,
		PlantEmoji:     pendingPlantEmoji,
		HealthEmoji:    pendingHealthEmoji,
		HealthColor:    pendingHealthColor,
		Latitude:       payload.Latitude,
		Longitude:      payload.Longitude,
		UserLocation:   payload.UserLocation,
		Timestamp:      payload.Timestamp,
		Offline:        true,
	}
}
