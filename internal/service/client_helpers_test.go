// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-agro-sync/internal/adapter"
	"github.com/MKhiriev/go-agro-sync/internal/messaging"
	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/models"
)

// memKV is an in-memory LocalKVRepository. failWrites makes Put and Delete
// fail without touching the data, like a full disk. Like the SQLite
// repository, writes under a cancelled context fail.
type memKV struct {
	mu         sync.Mutex
	data       map[string][]byte
	failWrites atomic.Bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memKV) Put(ctx context.Context, key string, value []byte) error {
	if m.failWrites.Load() {
		return errors.New("disk full")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	if m.failWrites.Load() {
		return errors.New("disk full")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// seqIDs yields offline_1, offline_2, ...
type seqIDs struct {
	n atomic.Int64
}

func (s *seqIDs) Generate() string {
	return fmt.Sprintf("offline_%d", s.n.Add(1))
}

type stubState struct {
	online atomic.Bool
}

func online() *stubState {
	s := &stubState{}
	s.online.Store(true)
	return s
}

func (s *stubState) IsOnline() bool { return s.online.Load() }

type spyBroadcaster struct {
	mu       sync.Mutex
	messages []messaging.Message
}

func (s *spyBroadcaster) Broadcast(msg messaging.Message) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return 1
}

func (s *spyBroadcaster) sent() []messaging.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]messaging.Message(nil), s.messages...)
}

// fakeIngestion plays the ingestion server. Like the real one it stores
// every record it receives, including ones it has seen before.
type fakeIngestion struct {
	adapter.ServerAdapter

	mu       sync.Mutex
	batches  [][]string
	stored   []string
	rejected map[string]string

	transportErr error

	// maxBatch rejects larger requests with a bad request, like the server
	maxBatch int
	// failOnBatch makes the n-th request (1-based) fail in transport
	failOnBatch int
	calls       int
	// afterResponse runs once the server has stored the batch
	afterResponse func()

	// when set, Sync signals entered and waits for release
	entered chan struct{}
	release chan struct{}
}

func newFakeIngestion() *fakeIngestion {
	return &fakeIngestion{rejected: make(map[string]string)}
}

func (f *fakeIngestion) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	if f.transportErr != nil {
		return models.SyncResponse{}, f.transportErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.failOnBatch == f.calls {
		return models.SyncResponse{}, fmt.Errorf("%w: connection reset", adapter.ErrTransport)
	}
	if f.maxBatch > 0 && len(req.Records) > f.maxBatch {
		return models.SyncResponse{}, adapter.ErrBadRequest
	}
	if f.afterResponse != nil {
		defer f.afterResponse()
	}

	resp := models.SyncResponse{Message: "sync completed", Total: len(req.Records)}
	batch := make([]string, 0, len(req.Records))
	for _, r := range req.Records {
		batch = append(batch, r.LocalID)
		if msg, bad := f.rejected[r.LocalID]; bad {
			resp.Results = append(resp.Results, models.SyncItemResult{ID: r.LocalID, Error: msg})
			continue
		}
		f.stored = append(f.stored, r.LocalID)
		resp.Results = append(resp.Results, models.SyncItemResult{ID: r.LocalID, Success: true})
		resp.Success++
	}
	f.batches = append(f.batches, batch)

	return resp, nil
}

func (f *fakeIngestion) submitted() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.batches...)
}

func (f *fakeIngestion) storedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.stored...)
}

func localIDs(records []models.PendingRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.LocalID)
	}
	return ids
}

func payloadAt(lat, lon float64) models.SubmissionPayload {
	return models.SubmissionPayload{
		Image:     "data:image/jpeg;base64,/9j/4AAQ",
		Latitude:  lat,
		Longitude: lon,
		UserID:    "user_k3x9",
	}
}
