// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package worker is the client's background worker: a caching
// http.RoundTripper placed between the client adapter and the network,
// together with the revision lifecycle that owns its cache partitions.
//
// Requests are routed by [Classify]:
//
//	exact manifest entry → CACHE_FIRST            (static partition)
//	path under /api/     → NETWORK_FIRST          (dynamic partition, plant-info only)
//	any other GET        → STALE_WHILE_REVALIDATE (dynamic partition)
//	non-GET              → passed through untouched
//
// GET requests never fail at this boundary: when neither the network nor
// the cache can answer, the router synthesizes a response carrying the
// [models.OfflineHeader] header.
package worker
