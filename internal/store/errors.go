// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDiagnosisNotSaved is returned when an INSERT of a diagnosis completes
	// without returning the generated row.
	ErrDiagnosisNotSaved = errors.New("diagnosis was not saved")

	// ErrInvalidDiagnosis is returned when the database rejects a diagnosis
	// because it violates a column constraint.
	ErrInvalidDiagnosis = errors.New("diagnosis violates a constraint")

	// ErrKeyNotFound is returned by [LocalKVRepository.Get] for missing keys.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCacheEntryNotFound is returned on a cache miss.
	ErrCacheEntryNotFound = errors.New("cache entry not found")

	// ErrPartitionNotFound is returned by [CacheRepository.PutEntry] when the
	// partition was never opened or has been deleted.
	ErrPartitionNotFound = errors.New("cache partition not found")
)
