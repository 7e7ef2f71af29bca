// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message strings shared by the HTTP
// handlers and the terminal client.
package app

const (
	// MsgProcessingImage is returned when analysis of a submitted photo fails
	// on the server side.
	MsgProcessingImage = "error processing image"

	// MsgListingDiagnoses is returned when the diagnosis history cannot be read.
	MsgListingDiagnoses = "error listing diagnoses"

	// MsgSyncingData is returned when a sync batch cannot be processed as a
	// whole.
	MsgSyncingData = "error syncing data"

	MsgGettingStats = "error getting statistics"
)
