// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubmissionPayload is the body of a single plant diagnosis submission.
// The same shape is sent to the analysis endpoint when the client is online
// and stored inside a [PendingRecord] when it is not.
type SubmissionPayload struct {
	// Image is the captured photo encoded as a data URL
	// (e.g. "data:image/jpeg;base64,...").
	Image string `json:"image"`

	// Latitude and Longitude are the WGS84 coordinates where the photo was taken.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// UserID identifies the submitter. Defaults to "anonymous" on the server.
	UserID string `json:"userId,omitempty"`

	// UserLocation is a free-form, human readable place name.
	UserLocation string `json:"userLocation,omitempty"`

	// Timestamp is the client-side capture time.
	Timestamp time.Time `json:"timestamp"`
}

// PendingRecord is a submission queued locally while the client was offline.
//
// Synced starts false and is flipped only by the sync reconciler. A record
// with Synced == true is never submitted again.
type PendingRecord struct {
	LocalID string            `json:"localId"`
	Payload SubmissionPayload `json:"payload"`
	Synced  bool              `json:"synced"`
}

// PendingRecordPayload is the wire form of a queued record inside a sync batch:
// the submission fields plus the LocalID used to correlate per-item results.
type PendingRecordPayload struct {
	SubmissionPayload
	LocalID string `json:"localId"`
}

// RecordCounts summarizes the offline queue for the status banner.
type RecordCounts struct {
	Pending int `json:"pending"`
	Synced  int `json:"synced"`
}
