// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string, transport http.RoundTripper) ServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, transport, logger.Nop())
	require.NoError(t, err)
	return a
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Analyze ─────────────────────────────────────────────────────────────────

func TestAnalyze_Success(t *testing.T) {
	payload := models.SubmissionPayload{Image: "data:image/png;base64,AA", Latitude: 1, Longitude: 2}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analyze-plant", r.URL.Path)
		assert.Equal(t, "trace-1", r.Header.Get(utils.TraceIDHeader))

		var got models.SubmissionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, payload.Image, got.Image)

		_, _ = utils.WriteJSON(w, models.DiagnosisResult{ID: "9", PlantType: "Tomato", Confidence: 88}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	got, err := a.Analyze(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "9", got.ID)
	assert.Equal(t, 88, got.Confidence)
}

func TestAnalyze_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "image is required"}, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Analyze(context.Background(), models.SubmissionPayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "image is required")
}

func TestAnalyze_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, nil).Analyze(context.Background(), models.SubmissionPayload{})
	assert.ErrorIs(t, err, ErrTransport)
}

// TestAnalyze_SyntheticOffline verifies a response marked offline by the
// transport is reported as a transport failure, not a server error.
func TestAnalyze_SyntheticOffline(t *testing.T) {
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		resp, err := utils.NewJSONResponse(r, http.StatusServiceUnavailable, models.ErrorResponse{Error: "offline", Offline: true})
		if err == nil {
			resp.Header.Set(models.OfflineHeader, "1")
		}
		return resp, err
	})

	_, err := newTestAdapter(t, "localhost:1", tr).Analyze(context.Background(), models.SubmissionPayload{})
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrServiceUnavailable)
}

// ── Sync ────────────────────────────────────────────────────────────────────

func TestSync_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync", r.URL.Path)

		var req models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Records, 1)

		_, _ = utils.WriteJSON(w, models.SyncResponse{
			Message: "ok",
			Results: []models.SyncItemResult{{Success: true, ID: req.Records[0].LocalID}},
			Total:   1,
			Success: 1,
		}, http.StatusOK)
	}))
	defer srv.Close()

	req := models.SyncRequest{Records: []models.PendingRecordPayload{{LocalID: "offline_a"}}}
	got, err := newTestAdapter(t, srv.URL, nil).Sync(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "offline_a", got.Results[0].ID)
}

func TestSync_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Sync(context.Background(), models.SyncRequest{})
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestSync_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Sync(context.Background(), models.SyncRequest{})
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "418")
}

// ── Read endpoints ──────────────────────────────────────────────────────────

func TestReadEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/plant-info":
			_, _ = utils.WriteJSON(w, models.DefaultPlantInfo(), http.StatusOK)
		case "/api/diagnoses":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = utils.WriteJSON(w, []models.DiagnosisResult{{ID: "1"}, {ID: "2"}}, http.StatusOK)
		case "/api/stats":
			_, _ = utils.WriteJSON(w, models.Stats{TotalDiagnoses: 3}, http.StatusOK)
		case "/api/version":
			_, _ = utils.WriteJSON(w, models.VersionInfo{Version: "2.1.0"}, http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	ctx := context.Background()

	info, err := a.PlantInfo(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 94.92, info.Accuracy, 0.001)

	list, err := a.Diagnoses(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	stats, err := a.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDiagnoses)

	v, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", v.Version)
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, nil).Version(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransport)
}
