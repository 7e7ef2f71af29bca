// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		r.Post("/api/analyze-plant", h.analyzePlant)
		r.Get("/api/diagnoses", h.listDiagnoses)
		r.Post("/api/sync", h.syncRecords)
		r.Get("/api/stats", h.getStats)
		r.Get("/api/plant-info", h.getPlantInfo)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	if h.staticDir != "" {
		router.Get("/*", h.serveStatic)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
