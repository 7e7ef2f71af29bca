// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return ErrServerUnavailable
	case errors.Is(err, adapter.ErrBadRequest):
		return errors.Join(ErrInvalidDataProvided, errors.New(extractBody(err)))
	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return ErrServerUnavailable
	case errors.Is(err, adapter.ErrInternalServerError):
		return errors.Join(ErrSubmissionRefused, errors.New(extractBody(err)))
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
