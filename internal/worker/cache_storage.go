// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/store"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

// ErrCacheMiss is returned by the Match methods when nothing is stored for
// a request.
var ErrCacheMiss = errors.New("no cached response")

// CacheStorage is the partitioned response cache. Entries outlive the
// process, so a restarted worker serves what the previous one stored.
type CacheStorage struct {
	repo store.CacheRepository
	now  func() time.Time
}

func NewCacheStorage(repo store.CacheRepository) *CacheStorage {
	return &CacheStorage{repo: repo, now: time.Now}
}

// Open registers the partition name.
func (c *CacheStorage) Open(ctx context.Context, name string) error {
	return c.repo.CreatePartition(ctx, name)
}

// Names lists partitions in creation order.
func (c *CacheStorage) Names(ctx context.Context) ([]string, error) {
	return c.repo.Partitions(ctx)
}

// Keys lists request keys stored in partition name.
func (c *CacheStorage) Keys(ctx context.Context, name string) ([]string, error) {
	return c.repo.Keys(ctx, name)
}

// Delete drops a partition with all its entries.
func (c *CacheStorage) Delete(ctx context.Context, name string) (bool, error) {
	return c.repo.DeletePartition(ctx, name)
}

// Match looks req up in every partition.
func (c *CacheStorage) Match(ctx context.Context, req *http.Request) (*http.Response, error) {
	entry, err := c.repo.MatchAnyEntry(ctx, RequestKey(req))
	return c.response(req, entry, err)
}

// MatchIn looks req up in partition name only.
func (c *CacheStorage) MatchIn(ctx context.Context, name string, req *http.Request) (*http.Response, error) {
	entry, err := c.repo.MatchEntry(ctx, name, RequestKey(req))
	return c.response(req, entry, err)
}

// Put stores a snapshot of resp under req and returns an equivalent
// response whose body can still be read. resp.Body is consumed and closed.
func (c *CacheStorage) Put(ctx context.Context, name string, req *http.Request, resp *http.Response) (*http.Response, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	entry := models.CacheEntry{
		Key:      RequestKey(req),
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: c.now(),
	}
	restored := utils.NewResponse(req, resp.StatusCode, resp.Header.Clone(), body)

	if err = c.repo.PutEntry(ctx, name, entry); err != nil {
		return restored, fmt.Errorf("put %q into %s: %w", entry.Key, name, err)
	}

	return restored, nil
}

func (c *CacheStorage) response(req *http.Request, entry models.CacheEntry, err error) (*http.Response, error) {
	if errors.Is(err, store.ErrCacheEntryNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache lookup: %w", err)
	}

	return utils.NewResponse(req, entry.Status, entry.Header.Clone(), entry.Body), nil
}

// RequestKey is the cache identity of req.
func RequestKey(req *http.Request) string {
	return req.Method + " " + req.URL.String()
}
