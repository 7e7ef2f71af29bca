// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-agro-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldImage targets the encoded photo of a submission.
	FieldImage = "image"

	// FieldLatitude targets the WGS84 latitude of a submission.
	FieldLatitude = "latitude"

	// FieldLongitude targets the WGS84 longitude of a submission.
	FieldLongitude = "longitude"

	// FieldLocalID targets the client-generated id of a queued record.
	FieldLocalID = "local_id"

	// FieldRecords targets the record list of a sync batch.
	FieldRecords = "records"
)

// MaxSyncBatch caps the number of records accepted in one sync request.
const MaxSyncBatch = 500

// DiagnosisValidator validates submissions, queued records and sync batches.
type DiagnosisValidator struct{}

func NewDiagnosisValidator() Validator {
	return &DiagnosisValidator{}
}

func (v *DiagnosisValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmissionPayload:
		return v.validateSubmission(ctx, value, fields...)
	case *models.SubmissionPayload:
		return v.validateSubmission(ctx, *value, fields...)

	case models.PendingRecordPayload:
		return v.validateRecord(ctx, value, fields...)
	case *models.PendingRecordPayload:
		return v.validateRecord(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSubmission accepts (0, 0) coordinates: they are a valid point.
func (v *DiagnosisValidator) validateSubmission(_ context.Context, p models.SubmissionPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImage, FieldLatitude, FieldLongitude}
	}

	for _, f := range fields {
		switch f {
		case FieldImage:
			if strings.TrimSpace(p.Image) == "" {
				return ErrEmptyImage
			}
			if strings.HasPrefix(p.Image, "data:") && !strings.HasPrefix(p.Image, "data:image/") {
				return ErrInvalidImage
			}
		case FieldLatitude:
			if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
				return ErrInvalidLatitude
			}
		case FieldLongitude:
			if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
				return ErrInvalidLongitude
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiagnosisValidator) validateRecord(ctx context.Context, r models.PendingRecordPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocalID, FieldImage, FieldLatitude, FieldLongitude}
	}

	for _, f := range fields {
		switch f {
		case FieldLocalID:
			if strings.TrimSpace(r.LocalID) == "" {
				return ErrInvalidLocalID
			}
		default:
			if err := v.validateSubmission(ctx, r.SubmissionPayload, f); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateSyncRequest checks the batch shape only. Individual records are
// validated by the ingestion service so one bad record fails alone.
func (v *DiagnosisValidator) validateSyncRequest(_ context.Context, request models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldRecords:
			if len(request.Records) == 0 {
				return ErrEmptyRecords
			}
			if len(request.Records) > MaxSyncBatch {
				return fmt.Errorf("%w: %d > %d", ErrTooManyRecords, len(request.Records), MaxSyncBatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
