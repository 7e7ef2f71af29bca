// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyImage       = errors.New("image is required")
	ErrInvalidImage     = errors.New("image must be an image data URL")
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180]")
	ErrInvalidLocalID   = errors.New("invalid local id")
	ErrEmptyRecords     = errors.New("records list cannot be empty")
	ErrTooManyRecords   = errors.New("records list is too large")
)
