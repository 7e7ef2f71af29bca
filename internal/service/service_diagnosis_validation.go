// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/validators"
	"github.com/MKhiriev/go-agro-sync/models"
)

// DiagnosisServiceWrapper defines middleware composition for DiagnosisService.
// Implementations wrap an existing DiagnosisService to add behavior such as
// validating.
type DiagnosisServiceWrapper interface {
	Wrap(DiagnosisService) DiagnosisService
}

// DiagnosisValidationService rejects malformed submissions before they
// reach the classifier.
type DiagnosisValidationService struct {
	inner     DiagnosisService
	validator validators.Validator
}

func NewDiagnosisValidationService() DiagnosisServiceWrapper {
	return &DiagnosisValidationService{
		validator: validators.NewDiagnosisValidator(),
	}
}

func (v *DiagnosisValidationService) Analyze(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error) {
	if err := v.validator.Validate(ctx, payload); err != nil {
		return models.DiagnosisResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Analyze(ctx, payload)
}

func (v *DiagnosisValidationService) List(ctx context.Context, limit uint64) ([]models.DiagnosisResult, error) {
	return v.inner.List(ctx, limit)
}

func (v *DiagnosisValidationService) Wrap(inner DiagnosisService) DiagnosisService {
	v.inner = inner
	return v
}
