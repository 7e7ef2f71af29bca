// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the ingestion server.
//
// It wires chi routes for diagnosis analysis, batch sync, listing, stats,
// reference data and version, exposes Prometheus metrics and serves the web
// assets. Request tracing, access logging, metrics and response compression
// are applied as middleware before requests reach the service layer.
package http
