// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/mock"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Enqueue / ListPending ────────────────────────────────────────────────────

func TestRecordStore_EnqueueKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewClientRecordStore(newMemKV(), &seqIDs{}, logger.Nop())

	var ids []string
	for i := range 5 {
		ids = append(ids, s.Enqueue(ctx, payloadAt(-15.79-float64(i)/100, -47.88)))
	}

	pending := s.ListPending(ctx)
	require.Len(t, pending, 5)
	assert.Equal(t, ids, localIDs(pending))
	for i, r := range pending {
		assert.False(t, r.Synced)
		assert.InDelta(t, -15.79-float64(i)/100, r.Payload.Latitude, 1e-9)
	}
}

func TestRecordStore_DefaultIDsArePrefixedAndUnique(t *testing.T) {
	ctx := context.Background()
	s := NewClientRecordStore(newMemKV(), nil, logger.Nop())

	seen := make(map[string]struct{})
	for range 50 {
		id := s.Enqueue(ctx, payloadAt(1, 1))
		assert.True(t, strings.HasPrefix(id, LocalIDPrefix))
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

// ── MarkSynced ───────────────────────────────────────────────────────────────

func TestRecordStore_MarkSynced(t *testing.T) {
	ctx := context.Background()
	s := NewClientRecordStore(newMemKV(), &seqIDs{}, logger.Nop())

	a := s.Enqueue(ctx, payloadAt(1, 1))
	b := s.Enqueue(ctx, payloadAt(2, 2))
	c := s.Enqueue(ctx, payloadAt(3, 3))

	s.MarkSynced(ctx, a, c, "offline_unknown")

	assert.Equal(t, []string{b}, localIDs(s.ListPending(ctx)))
	counts := s.Counts()
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 2, counts.Synced)
}

// ── Persistence ──────────────────────────────────────────────────────────────

func TestRecordStore_LoadRestoresPersistedQueue(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	first := NewClientRecordStore(kv, &seqIDs{}, logger.Nop())
	a := first.Enqueue(ctx, payloadAt(1, 1))
	b := first.Enqueue(ctx, payloadAt(2, 2))
	first.MarkSynced(ctx, a)

	second := NewClientRecordStore(kv, &seqIDs{}, logger.Nop())
	require.NoError(t, second.Load(ctx))

	assert.Equal(t, []string{b}, localIDs(second.ListPending(ctx)))
	assert.Equal(t, 1, second.Counts().Synced)
}

func TestRecordStore_LoadEmpty(t *testing.T) {
	s := NewClientRecordStore(newMemKV(), nil, logger.Nop())
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.ListPending(context.Background()))
}

func TestRecordStore_LoadCorrupted(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	require.NoError(t, kv.Put(ctx, OfflineDataKey, []byte("{not json")))

	s := NewClientRecordStore(kv, nil, logger.Nop())
	assert.Error(t, s.Load(ctx))
}

func TestRecordStore_PersistFailureKeepsMemoryState(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockLocalKVRepository(ctrl)
	kv.EXPECT().Put(gomock.Any(), OfflineDataKey, gomock.Any()).Return(errors.New("database is locked")).Times(2)

	ctx := context.Background()
	s := NewClientRecordStore(kv, &seqIDs{}, logger.Nop())

	id := s.Enqueue(ctx, payloadAt(1, 1))
	assert.Equal(t, "offline_1", id)
	s.Enqueue(ctx, payloadAt(2, 2))

	assert.Len(t, s.ListPending(ctx), 2)
}

func TestRecordStore_ClearAll(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := NewClientRecordStore(kv, nil, logger.Nop())
	s.Enqueue(ctx, payloadAt(1, 1))

	s.ClearAll(ctx)

	assert.Empty(t, s.ListPending(ctx))
	_, err := kv.Get(ctx, OfflineDataKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}
