// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/service"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidLimit:                http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	service.ErrClassificationFailed: http.StatusInternalServerError,
	service.ErrDiagnosisNotSaved:    http.StatusInternalServerError,
	store.ErrDiagnosisNotSaved:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with an [models.ErrorResponse]. Client errors carry the
// error text, server errors carry msg only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	body := models.ErrorResponse{Error: msg}
	if status < http.StatusInternalServerError {
		body.Error = err.Error()
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		logger.FromRequest(r).Err(wErr).Str("func", "writeError").Msg("error writing response")
	}
}
