// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
)

// ClientStorages groups all client-side repositories. Both share one SQLite
// file: the key-value table holds the offline queue and the reference-data
// snapshot, the cache tables hold the worker's response partitions.
type ClientStorages struct {
	KVRepository    LocalKVRepository
	CacheRepository CacheRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DSN, creating the file if it does
//     not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the key-value and cache repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KVRepository:    NewLocalKVRepository(db, logger),
		CacheRepository: NewLocalCacheRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
