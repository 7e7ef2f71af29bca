// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
	"golang.org/x/sync/errgroup"
)

// SyncTag is the background sync event that triggers reconciliation.
const SyncTag = "sync-diagnoses"

const seedConcurrency = 4

var (
	ErrUnknownSyncTag = errors.New("unknown sync tag")
	ErrFetchFailed    = errors.New("fetch failed")
)

// Reconciler runs one reconciliation of the offline queue.
type Reconciler interface {
	Reconcile(ctx context.Context) models.SyncOutcome
}

// Worker is one installed revision. It holds no state besides its revision:
// everything it needs between events lives in the cache storage.
type Worker struct {
	revision   Revision
	cache      *CacheStorage
	network    http.RoundTripper
	baseURL    *url.URL
	reconciler Reconciler

	logger *logger.Logger
}

// NewWorker creates a worker for rev. network is the direct transport used
// to seed caches; relative manifest entries are resolved against baseURL.
func NewWorker(rev Revision, cache *CacheStorage, network http.RoundTripper, baseURL string, reconciler Reconciler, log *logger.Logger) (*Worker, error) {
	base, err := url.Parse(utils.NormalizeBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if network == nil {
		network = http.DefaultTransport
	}

	return &Worker{
		revision:   rev,
		cache:      cache,
		network:    network,
		baseURL:    base,
		reconciler: reconciler,
		logger:     &logger.Logger{Logger: log.WithComponent("worker").With().Str("revision", rev.Version).Logger()},
	}, nil
}

func (w *Worker) Revision() Revision {
	return w.revision
}

// Install opens both partitions and seeds the static one with every
// manifest entry. It returns the first seeding error; entries fetched before
// it stay cached.
func (w *Worker) Install(ctx context.Context) error {
	for _, name := range []string{w.revision.StaticCache, w.revision.DynamicCache} {
		if err := w.cache.Open(ctx, name); err != nil {
			return fmt.Errorf("open cache %s: %w", name, err)
		}
	}

	if err := w.addAll(ctx, w.revision.StaticCache, w.revision.Manifest); err != nil {
		return fmt.Errorf("seed static cache: %w", err)
	}

	w.logger.Info().Int("assets", len(w.revision.Manifest)).Msg("revision installed")
	return nil
}

// Activate deletes every partition this revision does not own and returns
// the deleted names.
func (w *Worker) Activate(ctx context.Context) ([]string, error) {
	names, err := w.cache.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list caches: %w", err)
	}

	var deleted []string
	for _, name := range names {
		if w.revision.owns(name) {
			continue
		}
		if _, err = w.cache.Delete(ctx, name); err != nil {
			return deleted, fmt.Errorf("delete cache %s: %w", name, err)
		}
		w.logger.Info().Str("cache", name).Msg("stale cache deleted")
		deleted = append(deleted, name)
	}

	return deleted, nil
}

// CacheURLs primes the dynamic partition with urls.
func (w *Worker) CacheURLs(ctx context.Context, urls []string) error {
	return w.addAll(ctx, w.revision.DynamicCache, urls)
}

// HandleSync handles a background sync event.
func (w *Worker) HandleSync(ctx context.Context, tag string) (models.SyncOutcome, error) {
	if tag != SyncTag {
		return models.SyncOutcome{}, fmt.Errorf("%w: %q", ErrUnknownSyncTag, tag)
	}

	return w.reconciler.Reconcile(ctx), nil
}

func (w *Worker) addAll(ctx context.Context, partition string, urls []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)

	for _, raw := range urls {
		g.Go(func() error {
			return w.add(gctx, partition, raw)
		})
	}

	return g.Wait()
}

func (w *Worker) add(ctx context.Context, partition, raw string) error {
	ref, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %q: %w", raw, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL.ResolveReference(ref).String(), nil)
	if err != nil {
		return err
	}

	resp, err := w.network.RoundTrip(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFetchFailed, req.URL, err)
	}
	if !ok(resp) {
		_ = resp.Body.Close()
		return fmt.Errorf("%w: %s: status %d", ErrFetchFailed, req.URL, resp.StatusCode)
	}

	stored, err := w.cache.Put(ctx, partition, req, resp)
	if stored != nil {
		_ = stored.Body.Close()
	}
	return err
}
