// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/mock"
	"github.com/MKhiriev/go-agro-sync/internal/validators"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSubmissionFixture(t *testing.T, state *stubState) (ClientSubmissionService, ClientRecordStore, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	records := NewClientRecordStore(newMemKV(), &seqIDs{}, logger.Nop())

	svc := NewClientSubmissionService(records, serverAdapter, state, logger.Nop())
	svc.(*clientSubmissionService).now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return svc, records, serverAdapter
}

func TestSubmit_OnlineReturnsServerResult(t *testing.T) {
	svc, records, serverAdapter := newSubmissionFixture(t, online())
	ctx := context.Background()

	want := models.DiagnosisResult{ID: "42", PlantType: "Grape", Disease: "Black_rot", Confidence: 88}
	serverAdapter.EXPECT().Analyze(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.SubmissionPayload) (models.DiagnosisResult, error) {
			assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), p.Timestamp)
			return want, nil
		})

	got, err := svc.Submit(ctx, payloadAt(-15.79, -47.88))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Zero(t, records.Counts().Pending)
}

func TestSubmit_OfflineQueuesAndReturnsPlaceholder(t *testing.T) {
	state := &stubState{}
	svc, records, _ := newSubmissionFixture(t, state)
	ctx := context.Background()

	p := payloadAt(-15.79, -47.88)
	p.UserLocation = "Brasília"

	got, err := svc.Submit(ctx, p)

	require.NoError(t, err)
	assert.True(t, got.Offline)
	assert.Equal(t, "offline_1", got.ID)
	assert.Equal(t, "Tomate", got.PlantType)
	assert.Equal(t, "Análise Pendente", got.Disease)
	assert.Equal(t, "⏳", got.HealthEmoji)
	assert.Equal(t, "yellow", got.HealthColor)
	assert.Equal(t, "Brasília", got.UserLocation)

	pending := records.ListPending(ctx)
	require.Len(t, pending, 1)
	assert.Equal(t, "offline_1", pending[0].LocalID)
	assert.False(t, pending[0].Payload.Timestamp.IsZero())
}

func TestSubmit_TransportFailureQueues(t *testing.T) {
	svc, records, serverAdapter := newSubmissionFixture(t, online())
	ctx := context.Background()

	serverAdapter.EXPECT().Analyze(ctx, gomock.Any()).
		Return(models.DiagnosisResult{}, fmt.Errorf("analyze: %w: connection reset", adapter.ErrTransport))

	got, err := svc.Submit(ctx, payloadAt(1, 2))

	require.NoError(t, err)
	assert.True(t, got.Offline)
	assert.Equal(t, 1, records.Counts().Pending)
}

func TestSubmit_ServerErrorsAreNotQueued(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "bad request",
			err:     fmt.Errorf("analyze: %w: invalid latitude", adapter.ErrBadRequest),
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "internal error",
			err:     fmt.Errorf("analyze: %w: database down", adapter.ErrInternalServerError),
			wantErr: ErrSubmissionRefused,
		},
		{
			name:    "service unavailable",
			err:     fmt.Errorf("analyze: %w", adapter.ErrServiceUnavailable),
			wantErr: ErrServerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, records, serverAdapter := newSubmissionFixture(t, online())
			serverAdapter.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.DiagnosisResult{}, tt.err)

			_, err := svc.Submit(context.Background(), payloadAt(1, 2))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, records.Counts().Pending)
		})
	}
}

func TestSubmit_InvalidPayload(t *testing.T) {
	// no adapter call is expected
	svc, records, _ := newSubmissionFixture(t, online())

	p := payloadAt(95, 0)
	_, err := svc.Submit(context.Background(), p)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidLatitude)
	assert.Zero(t, records.Counts().Pending)
}

func TestSubmit_KeepsClientTimestamp(t *testing.T) {
	state := &stubState{}
	svc, records, _ := newSubmissionFixture(t, state)
	ctx := context.Background()

	p := payloadAt(1, 2)
	p.Timestamp = time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	_, err := svc.Submit(ctx, p)
	require.NoError(t, err)

	assert.Equal(t, p.Timestamp, records.ListPending(ctx)[0].Payload.Timestamp)
}
