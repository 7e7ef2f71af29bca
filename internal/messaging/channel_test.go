// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package messaging

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runChannel starts c with h and stops it when the test ends.
func runChannel(t *testing.T, c *Channel, h Handler) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Run(ctx, h)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

// ── Inbox ────────────────────────────────────────────────────────────────────

func TestChannel_PostIsFIFO(t *testing.T) {
	c := NewChannel(4, logger.Nop())

	var (
		mu  sync.Mutex
		got []string
	)
	done := make(chan struct{})
	runChannel(t, c, func(_ context.Context, msg Message) Message {
		mu.Lock()
		got = append(got, msg.URLs[0])
		n := len(got)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
		return Message{}
	})

	ctx := context.Background()
	for _, u := range []string{"/a", "/b", "/c"} {
		require.NoError(t, c.Post(ctx, Message{Type: CacheURLs, URLs: []string{u}}))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("messages were not handled")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/a", "/b", "/c"}, got)
}

func TestChannel_RequestReply(t *testing.T) {
	c := NewChannel(1, logger.Nop())
	runChannel(t, c, func(_ context.Context, msg Message) Message {
		if msg.Type == GetVersion {
			return Message{Type: GetVersion, Version: "agroia-pwa-v2.1.0"}
		}
		return Message{}
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	resp, err := c.Connect(1).Request(ctx, Message{Type: GetVersion})
	require.NoError(t, err)
	assert.Equal(t, "agroia-pwa-v2.1.0", resp.Version)
}

func TestChannel_RequestAfterStop(t *testing.T) {
	c := NewChannel(1, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx, func(context.Context, Message) Message { return Message{} })

	_, err := c.Request(context.Background(), Message{Type: GetVersion})
	assert.ErrorIs(t, err, ErrChannelStopped)
}

func TestChannel_PostRespectsContext(t *testing.T) {
	c := NewChannel(1, logger.Nop())
	require.NoError(t, c.Post(context.Background(), Message{Type: SkipWaiting}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// inbox is full and nobody drains it
	assert.ErrorIs(t, c.Post(ctx, Message{Type: SkipWaiting}), context.DeadlineExceeded)
}

// ── Broadcast ────────────────────────────────────────────────────────────────

func TestChannel_BroadcastReachesAllPages(t *testing.T) {
	c := NewChannel(1, logger.Nop())
	p1 := c.Connect(1)
	p2 := c.Connect(1)
	defer p1.Close()
	defer p2.Close()

	msg := NewSyncMessage(models.SyncOutcome{Status: models.SyncStatusCompleted, Total: 2, SuccessCount: 2})
	assert.Equal(t, 2, c.Broadcast(msg))

	for _, p := range []*Client{p1, p2} {
		got := <-p.Messages()
		assert.Equal(t, SyncSuccess, got.Type)
		assert.Equal(t, 2, got.Outcome.SuccessCount)
	}
}

func TestChannel_BroadcastWithoutPagesIsDropped(t *testing.T) {
	c := NewChannel(1, logger.Nop())
	assert.Equal(t, 0, c.Broadcast(Message{Type: SyncSuccess}))
}

func TestChannel_BroadcastNeverBlocks(t *testing.T) {
	c := NewChannel(1, logger.Nop())
	p := c.Connect(1)
	defer p.Close()

	assert.Equal(t, 1, c.Broadcast(Message{Type: SyncSuccess}))
	assert.Equal(t, 0, c.Broadcast(Message{Type: SyncError}))

	got := <-p.Messages()
	assert.Equal(t, SyncSuccess, got.Type)
}

func TestClient_CloseStopsDelivery(t *testing.T) {
	c := NewChannel(1, logger.Nop())
	p := c.Connect(1)
	p.Close()
	p.Close()

	_, open := <-p.Messages()
	assert.False(t, open)
	assert.Equal(t, 0, c.Broadcast(Message{Type: SyncSuccess}))
}

func TestNewSyncMessage(t *testing.T) {
	ok := NewSyncMessage(models.SyncOutcome{Status: models.SyncStatusCompleted})
	assert.Equal(t, SyncSuccess, ok.Type)

	failed := NewSyncMessage(models.SyncOutcome{Status: models.SyncStatusFailed, Error: "server unreachable"})
	assert.Equal(t, SyncError, failed.Type)
	assert.Equal(t, "server unreachable", failed.Error)
	require.NotNil(t, failed.Outcome)
}
