// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

const (
	// OfflineDataKey holds the serialized queue.
	OfflineDataKey = "offlineData"
	// LocalIDPrefix marks ids generated on the client.
	LocalIDPrefix = "offline_"
)

// IDGenerator produces LocalIDs.
type IDGenerator interface {
	Generate() string
}

type clientRecordStore struct {
	kv  store.LocalKVRepository
	ids IDGenerator

	mu      sync.Mutex
	records []models.PendingRecord

	logger *logger.Logger
}

// NewClientRecordStore creates an empty store. Call Load to pick up records
// persisted by a previous process. A nil ids uses UUIDv7 with the "offline_"
// prefix.
func NewClientRecordStore(kv store.LocalKVRepository, ids IDGenerator, logger *logger.Logger) ClientRecordStore {
	if ids == nil {
		ids = utils.NewUUIDGenerator(LocalIDPrefix)
	}

	return &clientRecordStore{
		kv:     kv,
		ids:    ids,
		logger: logger.WithComponent("record-store"),
	}
}

func (s *clientRecordStore) Enqueue(ctx context.Context, payload models.SubmissionPayload) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Generate()
	s.records = append(s.records, models.PendingRecord{LocalID: id, Payload: payload})
	s.persistLocked(ctx)

	s.logger.Debug().Str("local_id", id).Int("records", len(s.records)).Msg("record enqueued")
	return id
}

func (s *clientRecordStore) ListPending(_ context.Context) []models.PendingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]models.PendingRecord, 0, len(s.records))
	for _, r := range s.records {
		if !r.Synced {
			pending = append(pending, r)
		}
	}
	return pending
}

func (s *clientRecordStore) MarkSynced(ctx context.Context, localIDs ...string) {
	if len(localIDs) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.records {
		if !s.records[i].Synced && slices.Contains(localIDs, s.records[i].LocalID) {
			s.records[i].Synced = true
			changed = true
		}
	}

	if changed {
		s.persistLocked(ctx)
	}
}

func (s *clientRecordStore) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.kv.Delete(context.WithoutCancel(ctx), OfflineDataKey); err != nil {
		s.logger.Err(err).Str("func", "*clientRecordStore.ClearAll").Msg("failed to delete offline data")
	}
}

func (s *clientRecordStore) Load(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, OfflineDataKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read offline data: %w", err)
	}

	var records []models.PendingRecord
	if err = json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("decode offline data: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	return nil
}

func (s *clientRecordStore) Counts() models.RecordCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c models.RecordCounts
	for _, r := range s.records {
		if r.Synced {
			c.Synced++
		} else {
			c.Pending++
		}
	}
	return c
}

// persistLocked writes the whole collection. Failures are logged only. The
// write outlives ctx: a mutation applied in memory must reach disk even when
// the caller has been cancelled in the meantime.
func (s *clientRecordStore) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.records)
	if err == nil {
		err = s.kv.Put(context.WithoutCancel(ctx), OfflineDataKey, raw)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientRecordStore.persistLocked").Msg("offline data not persisted")
	}
}
