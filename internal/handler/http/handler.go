// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	staticDir      string
	requestTimeout time.Duration

	metrics  *httpMetrics
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler registers the HTTP metrics on registry. A nil registry gets a
// private one.
func NewHandler(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		staticDir:      cfg.StaticDir,
		requestTimeout: cfg.RequestTimeout,
		metrics:        newHTTPMetrics(registry),
		gatherer:       registry,
		logger:         logger,
	}
}
