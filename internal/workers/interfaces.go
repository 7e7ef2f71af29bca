// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's periodic background jobs (connectivity
// probing, background sync events) with a uniform start/stop lifecycle.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; the work runs in goroutines owned by the worker.
// Stop cancels the work and blocks until it has fully exited. Both are safe
// to call repeatedly.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Job is one unit of periodic work. It should return promptly once ctx is
// cancelled.
type Job func(ctx context.Context)
