// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the local SQLite store, the caching worker, connectivity probing,
// the offline queue with its reconciler, and the terminal page into a single
// process lifecycle.
package client
