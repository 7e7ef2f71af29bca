// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyTaxonomy        = errors.New("plant taxonomy has no classes")
	ErrClassificationFailed = errors.New("plant classification failed")
	ErrDiagnosisNotSaved    = errors.New("diagnosis was not saved")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrSubmissionRefused = errors.New("server refused the submission")
)
