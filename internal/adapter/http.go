// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// A nil transport uses resty's default; the client application passes the
// worker router here.
func NewHTTPServerAdapter(cfg config.ClientAdapter, transport http.RoundTripper, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout, transport),
		logger: logger,
	}, nil
}

// Analyze implements [ServerAdapter].
func (h *httpServerAdapter) Analyze(ctx context.Context, payload models.SubmissionPayload) (models.DiagnosisResult, error) {
	var result models.DiagnosisResult
	if err := h.do(ctx, http.MethodPost, "/api/analyze-plant", payload, &result); err != nil {
		return models.DiagnosisResult{}, fmt.Errorf("analyze: %w", err)
	}

	return result, nil
}

// Sync implements [ServerAdapter].
func (h *httpServerAdapter) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	var result models.SyncResponse
	if err := h.do(ctx, http.MethodPost, "/api/sync", req, &result); err != nil {
		return models.SyncResponse{}, fmt.Errorf("sync: %w", err)
	}

	return result, nil
}

// PlantInfo implements [ServerAdapter].
func (h *httpServerAdapter) PlantInfo(ctx context.Context) (models.PlantInfo, error) {
	var result models.PlantInfo
	if err := h.do(ctx, http.MethodGet, "/api/plant-info", nil, &result); err != nil {
		return models.PlantInfo{}, fmt.Errorf("plant info: %w", err)
	}

	return result, nil
}

// Diagnoses implements [ServerAdapter].
func (h *httpServerAdapter) Diagnoses(ctx context.Context, limit int) ([]models.DiagnosisResult, error) {
	path := "/api/diagnoses"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var result []models.DiagnosisResult
	if err := h.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("diagnoses: %w", err)
	}

	return result, nil
}

// Stats implements [ServerAdapter].
func (h *httpServerAdapter) Stats(ctx context.Context) (models.Stats, error) {
	var result models.Stats
	if err := h.do(ctx, http.MethodGet, "/api/stats", nil, &result); err != nil {
		return models.Stats{}, fmt.Errorf("stats: %w", err)
	}

	return result, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var result models.VersionInfo
	if err := h.do(ctx, http.MethodGet, "/api/version", nil, &result); err != nil {
		return models.VersionInfo{}, fmt.Errorf("version: %w", err)
	}

	return result, nil
}

// do executes one request, maps its status and decodes a 2xx body into out.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, out any) error {
	log := logger.FromContext(ctx)

	req := h.request(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Debug().Err(err).Str("func", "*httpServerAdapter.do").Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Debug().Err(err).Str("func", "*httpServerAdapter.do").Str("path", path).Int("status", resp.StatusCode()).Msg("server returned an error")
		return err
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}
