// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/models"
)

type localCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &localCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localCacheRepository) CreatePartition(ctx context.Context, name string) error {
	if _, err := l.DB.ExecContext(ctx, createPartition, name); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localCacheRepository.CreatePartition").
			Str("partition", name).
			Msg("failed to create partition")
		return fmt.Errorf("failed to create partition %q: %w", name, err)
	}

	return nil
}

func (l *localCacheRepository) Partitions(ctx context.Context) ([]string, error) {
	return l.queryStrings(ctx, listPartitions)
}

func (l *localCacheRepository) DeletePartition(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deletePartitionEntries, name); err != nil {
		log.Err(err).Str("func", "localCacheRepository.DeletePartition").Str("partition", name).Msg("failed to delete entries")
		return false, fmt.Errorf("failed to delete entries of %q: %w", name, err)
	}

	res, err := tx.ExecContext(ctx, deletePartition, name)
	if err != nil {
		log.Err(err).Str("func", "localCacheRepository.DeletePartition").Str("partition", name).Msg("failed to delete partition")
		return false, fmt.Errorf("failed to delete partition %q: %w", name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit partition delete: %w", err)
	}

	return affected > 0, nil
}

func (l *localCacheRepository) PutEntry(ctx context.Context, partition string, entry models.CacheEntry) error {
	log := logger.FromContext(ctx)

	header, err := json.Marshal(entry.Header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	body := entry.Body
	if body == nil {
		body = []byte{}
	}

	res, err := l.DB.ExecContext(ctx, putCacheEntry, partition, entry.Key, entry.Status, header, body, entry.StoredAt.UTC(), partition)
	if err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.PutEntry").
			Str("partition", partition).
			Str("key", entry.Key).
			Msg("failed to store cache entry")
		return fmt.Errorf("failed to store cache entry %q: %w", entry.Key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrPartitionNotFound, partition)
	}

	return nil
}

func (l *localCacheRepository) MatchEntry(ctx context.Context, partition, key string) (models.CacheEntry, error) {
	return l.scanEntry(ctx, l.DB.QueryRowContext(ctx, matchCacheEntry, partition, key))
}

func (l *localCacheRepository) MatchAnyEntry(ctx context.Context, key string) (models.CacheEntry, error) {
	return l.scanEntry(ctx, l.DB.QueryRowContext(ctx, matchAnyCacheEntry, key))
}

func (l *localCacheRepository) Keys(ctx context.Context, partition string) ([]string, error) {
	return l.queryStrings(ctx, listCacheKeys, partition)
}

func (l *localCacheRepository) scanEntry(ctx context.Context, row *sql.Row) (models.CacheEntry, error) {
	var (
		entry  models.CacheEntry
		header []byte
	)

	err := row.Scan(&entry.Key, &entry.Status, &header, &entry.Body, &entry.StoredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CacheEntry{}, ErrCacheEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localCacheRepository.scanEntry").Msg("failed to read cache entry")
		return models.CacheEntry{}, fmt.Errorf("failed to read cache entry: %w", err)
	}

	entry.Header = make(http.Header)
	if err = json.Unmarshal(header, &entry.Header); err != nil {
		return models.CacheEntry{}, fmt.Errorf("failed to decode cached header: %w", err)
	}

	return entry, nil
}

func (l *localCacheRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localCacheRepository.queryStrings").Msg("query failed")
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan cache row: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}
