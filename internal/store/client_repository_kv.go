// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
)

type localKVRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalKVRepository(db *DB, logger *logger.Logger) LocalKVRepository {
	return &localKVRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	var value []byte
	err := l.DB.QueryRowContext(ctx, getKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localKVRepository.Get").Str("key", key).Msg("failed to read key")
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, nil
}

func (l *localKVRepository) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, putKV, key, value); err != nil {
		log.Err(err).Str("func", "localKVRepository.Put").Str("key", key).Msg("failed to write key")
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}

func (l *localKVRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteKV, key); err != nil {
		log.Err(err).Str("func", "localKVRepository.Delete").Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}
