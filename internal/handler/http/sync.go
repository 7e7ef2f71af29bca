// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-agro-sync/internal/app"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

// syncRecords ingests a batch of records queued offline. Per-record failures
// are reported in the body with status 200.
func (h *Handler) syncRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.syncRecords").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON, "")
		return
	}

	response, err := h.services.SyncService.Ingest(ctx, syncRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncRecords").Msg("error syncing records")
		writeError(w, r, err, app.MsgSyncingData)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
