// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"
)

// CacheEntry is a stored response snapshot keyed by request identity.
type CacheEntry struct {
	// Key is "METHOD URL".
	Key      string
	Status   int
	Header   http.Header
	Body     []byte
	StoredAt time.Time
}
