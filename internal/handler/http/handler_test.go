// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/mock"
	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/internal/validators"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	diagnoses *mock.MockDiagnosisService
	sync      *mock.MockSyncService
	stats     *mock.MockStatsService
	plantInfo *mock.MockPlantInfoService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &testServices{
		diagnoses: mock.NewMockDiagnosisService(ctrl),
		sync:      mock.NewMockSyncService(ctrl),
		stats:     mock.NewMockStatsService(ctrl),
		plantInfo: mock.NewMockPlantInfoService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		DiagnosisService: m.diagnoses,
		SyncService:      m.sync,
		StatsService:     m.stats,
		PlantInfoService: m.plantInfo,
		AppInfoService:   m.appInfo,
	}
	return NewHandler(services, cfg, nil, logger.Nop()), m
}

func serve(h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// ── Routes ───────────────────────────────────────────────────────────────────

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})

	rec := serve(h.Init(), http.MethodGet, "/api/nonexistent", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})

	rec := serve(h.Init(), http.MethodPost, "/api/version", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceID(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionInfo{Version: "2.1.0"})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}

// ── Analyze ──────────────────────────────────────────────────────────────────

func TestAnalyzePlant(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})

	payload := models.SubmissionPayload{
		Image:     "data:image/jpeg;base64,/9j/4AAQ",
		Latitude:  -15.79,
		Longitude: -47.88,
		UserID:    "user_k3x9",
	}
	m.diagnoses.EXPECT().Analyze(gomock.Any(), payload).Return(models.DiagnosisResult{
		ID: "12", PlantType: "Tomato", Disease: "Late_blight", Confidence: 87,
	}, nil)

	rec := serve(h.Init(), http.MethodPost, "/api/analyze-plant", payload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decodeBody[models.DiagnosisResult](t, rec)
	assert.Equal(t, "12", got.ID)
	assert.Equal(t, 87, got.Confidence)
}

func TestAnalyzePlant_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidJSON.Error(),
		},
		{
			name:       "validation",
			body:       models.SubmissionPayload{Image: "x", Latitude: 91},
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLatitude),
			wantStatus: http.StatusBadRequest,
			wantError:  validators.ErrInvalidLatitude.Error(),
		},
		{
			name:       "storage",
			body:       models.SubmissionPayload{Image: "x"},
			serviceErr: fmt.Errorf("%w: %w", service.ErrDiagnosisNotSaved, errors.New("pq: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "error processing image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			if tt.serviceErr != nil {
				m.diagnoses.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.DiagnosisResult{}, tt.serviceErr)
			}

			rec := serve(h.Init(), http.MethodPost, "/api/analyze-plant", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			got := decodeBody[models.ErrorResponse](t, rec)
			assert.Contains(t, got.Error, tt.wantError)
			assert.NotContains(t, got.Error, "pq:")
		})
	}
}

// ── Diagnoses ────────────────────────────────────────────────────────────────

func TestListDiagnoses(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantLimit uint64
	}{
		{name: "no limit", target: "/api/diagnoses", wantLimit: 0},
		{name: "explicit limit", target: "/api/diagnoses?limit=5", wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			m.diagnoses.EXPECT().List(gomock.Any(), tt.wantLimit).Return([]models.DiagnosisResult{{ID: "2"}, {ID: "1"}}, nil)

			rec := serve(h.Init(), http.MethodGet, tt.target, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeBody[[]models.DiagnosisResult](t, rec)
			assert.Len(t, got, 2)
		})
	}
}

func TestListDiagnoses_InvalidLimit(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})

	rec := serve(h.Init(), http.MethodGet, "/api/diagnoses?limit=-1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDiagnoses_EmptyIsArray(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.diagnoses.EXPECT().List(gomock.Any(), uint64(0)).Return([]models.DiagnosisResult{}, nil)

	rec := serve(h.Init(), http.MethodGet, "/api/diagnoses", nil)

	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSyncRecords(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})

	req := models.SyncRequest{Records: []models.PendingRecordPayload{
		{LocalID: "offline_a", SubmissionPayload: models.SubmissionPayload{Image: "x", Latitude: -15.79, Longitude: -47.88}},
	}}
	m.sync.EXPECT().Ingest(gomock.Any(), req).Return(models.SyncResponse{
		Message: "sync completed",
		Results: []models.SyncItemResult{{ID: "offline_a", Success: true}},
		Total:   1,
		Success: 1,
	}, nil)

	rec := serve(h.Init(), http.MethodPost, "/api/sync", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"sync completed","results":[{"success":true,"id":"offline_a"}],"total":1,"success":1}`, rec.Body.String())
}

func TestSyncRecords_EmptyBatch(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.sync.EXPECT().Ingest(gomock.Any(), gomock.Any()).
		Return(models.SyncResponse{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyRecords))

	rec := serve(h.Init(), http.MethodPost, "/api/sync", `{"records":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── Stats / plant info / version ─────────────────────────────────────────────

func TestGetStats(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.stats.EXPECT().Stats(gomock.Any()).Return(models.Stats{
		TotalDiagnoses: 3,
		PlantTypes:     1,
		HealthyPlants:  3,
		ByPlant:        []models.PlantDiseaseCount{{PlantType: "Tomato", Disease: "healthy", Count: 3, AvgConfidence: 0.8}},
	}, nil)

	rec := serve(h.Init(), http.MethodGet, "/api/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.Stats](t, rec)
	assert.EqualValues(t, 3, got.TotalDiagnoses)
}

func TestGetStats_Error(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.stats.EXPECT().Stats(gomock.Any()).Return(models.Stats{}, context.DeadlineExceeded)

	rec := serve(h.Init(), http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetPlantInfo(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.plantInfo.EXPECT().PlantInfo(gomock.Any()).Return(models.PlantInfo{Classes: []string{"Tomato___healthy"}, Accuracy: 94.93})

	rec := serve(h.Init(), http.MethodGet, "/api/plant-info", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.PlantInfo](t, rec)
	assert.Equal(t, []string{"Tomato___healthy"}, got.Classes)
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionInfo{Version: "2.1.0", BuildCommit: "abc123"})

	rec := serve(h.Init(), http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"2.1.0","build_commit":"abc123"}`, rec.Body.String())
}

// ── Metrics ──────────────────────────────────────────────────────────────────

func TestMetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionInfo{Version: "2.1.0"}).Times(2)

	router := h.Init()
	serve(router, http.MethodGet, "/api/version", nil)
	serve(router, http.MethodGet, "/api/version", nil)

	rec := serve(router, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `agro_http_requests_total{method="GET",route="/api/version",status="200"} 2`), body)
	assert.Contains(t, body, "agro_http_request_duration_seconds")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(fmt.Errorf("wrap: %w", service.ErrInvalidDataProvided)))
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrInvalidLimit))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(service.ErrClassificationFailed))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unknown")))
}
