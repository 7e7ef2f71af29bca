// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-agro-sync/internal/service"
)

var (
	errMissingDependency = errors.New("tui: missing dependency")

	errEmptyPath        = errors.New("image path is required")
	errNotAnImage       = errors.New("file is not an image")
	errInvalidLatitude  = errors.New("latitude must be a number")
	errInvalidLongitude = errors.New("longitude must be a number")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, service.ErrNoReferenceData):
		return "No plant data saved for offline use yet"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "No network or server unavailable"
	}

	return err.Error()
}
