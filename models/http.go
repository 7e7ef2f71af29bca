// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OfflineHeader marks a response synthesized on the client because the
// network was unreachable and nothing usable was cached.
const OfflineHeader = "X-Agro-Offline"

// ErrorResponse is the JSON error body shared by the server and the client
// worker's synthetic responses.
type ErrorResponse struct {
	Error string `json:"error"`
	// Offline is set only on synthetic client-side responses.
	Offline bool `json:"offline,omitempty"`
}
