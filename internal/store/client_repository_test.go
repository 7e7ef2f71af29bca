// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DSN: filepath.Join(t.TempDir(), "nested", "client.db")}

	s, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// ── LocalKVRepository ─────────────────────────────────────────────────────────

func TestKV_GetMissing(t *testing.T) {
	s := newTestClientStorages(t)

	_, err := s.KVRepository.Get(context.Background(), "offlineData")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKV_PutOverwriteDelete(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()

	require.NoError(t, s.KVRepository.Put(ctx, "offlineData", []byte(`[1]`)))
	require.NoError(t, s.KVRepository.Put(ctx, "offlineData", []byte(`[1,2]`)))

	v, err := s.KVRepository.Get(ctx, "offlineData")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(v))

	require.NoError(t, s.KVRepository.Delete(ctx, "offlineData"))
	_, err = s.KVRepository.Get(ctx, "offlineData")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestKV_SurvivesReopen verifies the queue blob outlives the connection.
func TestKV_SurvivesReopen(t *testing.T) {
	cfg := config.ClientStorage{DSN: filepath.Join(t.TempDir(), "client.db")}
	ctx := context.Background()

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.KVRepository.Put(ctx, "plantInfo", []byte(`{"accuracy":94.92}`)))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	v, err := second.KVRepository.Get(ctx, "plantInfo")
	require.NoError(t, err)
	assert.JSONEq(t, `{"accuracy":94.92}`, string(v))
}

// ── CacheRepository ───────────────────────────────────────────────────────────

func entry(key, body string) models.CacheEntry {
	return models.CacheEntry{
		Key:      key,
		Status:   http.StatusOK,
		Header:   http.Header{"Content-Type": []string{"text/plain"}},
		Body:     []byte(body),
		StoredAt: time.Now(),
	}
}

func TestCache_PutMatch(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()
	repo := s.CacheRepository

	require.NoError(t, repo.CreatePartition(ctx, "static"))
	require.NoError(t, repo.PutEntry(ctx, "static", entry("GET /style.css", "body{}")))

	got, err := repo.MatchEntry(ctx, "static", "GET /style.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(got.Body))
	assert.Equal(t, "text/plain", got.Header.Get("Content-Type"))
	assert.Equal(t, http.StatusOK, got.Status)

	_, err = repo.MatchEntry(ctx, "dynamic", "GET /style.css")
	assert.ErrorIs(t, err, ErrCacheEntryNotFound)
}

func TestCache_PutIntoMissingPartition(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()
	repo := s.CacheRepository

	err := repo.PutEntry(ctx, "never-opened", entry("GET /a", "a"))
	assert.ErrorIs(t, err, ErrPartitionNotFound)

	// a late write into a deleted partition must not bring it back
	require.NoError(t, repo.CreatePartition(ctx, "agroia-dynamic-v1"))
	deleted, err := repo.DeletePartition(ctx, "agroia-dynamic-v1")
	require.NoError(t, err)
	require.True(t, deleted)

	err = repo.PutEntry(ctx, "agroia-dynamic-v1", entry("GET /api/plant-info", "{}"))
	assert.ErrorIs(t, err, ErrPartitionNotFound)

	names, err := repo.Partitions(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = repo.MatchAnyEntry(ctx, "GET /api/plant-info")
	assert.ErrorIs(t, err, ErrCacheEntryNotFound)
}

func TestCache_MatchAnyUsesCreationOrder(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()
	repo := s.CacheRepository

	require.NoError(t, repo.CreatePartition(ctx, "first"))
	require.NoError(t, repo.CreatePartition(ctx, "second"))
	require.NoError(t, repo.PutEntry(ctx, "second", entry("GET /a", "from-second")))
	require.NoError(t, repo.PutEntry(ctx, "first", entry("GET /a", "from-first")))

	got, err := repo.MatchAnyEntry(ctx, "GET /a")
	require.NoError(t, err)
	assert.Equal(t, "from-first", string(got.Body))

	_, err = repo.MatchAnyEntry(ctx, "GET /missing")
	assert.ErrorIs(t, err, ErrCacheEntryNotFound)
}

func TestCache_PartitionsAndDelete(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := context.Background()
	repo := s.CacheRepository

	require.NoError(t, repo.CreatePartition(ctx, "old"))
	require.NoError(t, repo.PutEntry(ctx, "old", entry("GET /x", "x")))
	require.NoError(t, repo.CreatePartition(ctx, "new"))
	require.NoError(t, repo.CreatePartition(ctx, "new"))

	names, err := repo.Partitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "new"}, names)

	deleted, err := repo.DeletePartition(ctx, "old")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeletePartition(ctx, "old")
	require.NoError(t, err)
	assert.False(t, deleted)

	keys, err := repo.Keys(ctx, "old")
	require.NoError(t, err)
	assert.Empty(t, keys)

	names, err = repo.Partitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, names)
}
