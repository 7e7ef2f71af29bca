// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-agro-sync/internal/app"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
)

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.Stats(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStats").Msg("error getting stats")
		writeError(w, r, err, app.MsgGettingStats)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) getPlantInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.PlantInfoService.PlantInfo(r.Context()), http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
