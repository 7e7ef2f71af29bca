// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-agro-sync/internal/app"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

const limitParam = "limit"

func (h *Handler) analyzePlant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.SubmissionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.analyzePlant").Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON, "")
		return
	}

	result, err := h.services.DiagnosisService.Analyze(ctx, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.analyzePlant").Msg("error analyzing plant")
		writeError(w, r, err, app.MsgProcessingImage)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listDiagnoses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var limit uint64
	if raw := r.URL.Query().Get(limitParam); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLimit, raw), "")
			return
		}
		limit = parsed
	}

	diagnoses, err := h.services.DiagnosisService.List(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDiagnoses").Msg("error listing diagnoses")
		writeError(w, r, err, app.MsgListingDiagnoses)
		return
	}

	utils.WriteJSON(w, diagnoses, http.StatusOK)
}
