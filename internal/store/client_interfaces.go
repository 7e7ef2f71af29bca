// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-agro-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalKVRepository is the client key-value table. Values are opaque blobs.
type LocalKVRepository interface {
	// Get returns [ErrKeyNotFound] when key was never written or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CacheRepository stores response snapshots grouped into named partitions.
type CacheRepository interface {
	// CreatePartition registers name; existing partitions are left intact.
	CreatePartition(ctx context.Context, name string) error
	// Partitions lists partition names in creation order.
	Partitions(ctx context.Context) ([]string, error)
	// DeletePartition removes name and all its entries. It reports whether
	// the partition existed.
	DeletePartition(ctx context.Context, name string) (bool, error)

	// PutEntry upserts an entry into an existing partition. It returns
	// [ErrPartitionNotFound] and writes nothing when the partition is missing.
	PutEntry(ctx context.Context, partition string, entry models.CacheEntry) error
	// MatchEntry returns [ErrCacheEntryNotFound] on a miss.
	MatchEntry(ctx context.Context, partition, key string) (models.CacheEntry, error)
	// MatchAnyEntry searches every partition in creation order.
	MatchAnyEntry(ctx context.Context, key string) (models.CacheEntry, error)
	// Keys lists entry keys of a partition.
	Keys(ctx context.Context, partition string) ([]string, error)
}
