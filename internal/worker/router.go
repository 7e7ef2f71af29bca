// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/MKhiriev/go-agro-sync/internal/utils"
	"github.com/MKhiriev/go-agro-sync/models"
)

const (
	defaultRevalidateTimeout = 15 * time.Second

	msgOffline     = "Offline"
	msgUnavailable = "resource unavailable offline"
	msgNoInternet  = "no internet connection"
)

// Router is the caching transport. Until a revision is activated it passes
// every request through.
type Router struct {
	next    http.RoundTripper
	cache   *CacheStorage
	metrics *Metrics

	revision atomic.Pointer[Revision]

	revalidateTimeout time.Duration
	revalidations     sync.WaitGroup

	logger *logger.Logger
}

// NewRouter wraps next. A nil next uses http.DefaultTransport.
func NewRouter(next http.RoundTripper, cache *CacheStorage, metrics *Metrics, log *logger.Logger) *Router {
	if next == nil {
		next = http.DefaultTransport
	}

	return &Router{
		next:              next,
		cache:             cache,
		metrics:           metrics,
		revalidateTimeout: defaultRevalidateTimeout,
		logger:            log.WithComponent("worker-router"),
	}
}

// Use makes rev the revision the router serves from.
func (r *Router) Use(rev Revision) {
	r.revision.Store(&rev)
}

// Revision returns the revision in use, if any.
func (r *Router) Revision() (Revision, bool) {
	rev := r.revision.Load()
	if rev == nil {
		return Revision{}, false
	}
	return *rev, true
}

// Wait blocks until background revalidations started so far have finished.
func (r *Router) Wait() {
	r.revalidations.Wait()
}

// RoundTrip implements http.RoundTripper. For GET requests it never returns
// an error.
func (r *Router) RoundTrip(req *http.Request) (*http.Response, error) {
	rev := r.revision.Load()
	if rev == nil || req.Method != http.MethodGet {
		r.metrics.served(PassThrough, outcomePass)
		return r.next.RoundTrip(req)
	}

	switch s := Classify(req, rev.Manifest); s {
	case CacheFirst:
		return r.cacheFirst(req, rev), nil
	case NetworkFirst:
		return r.networkFirst(req, rev), nil
	default:
		return r.staleWhileRevalidate(req, rev), nil
	}
}

func (r *Router) cacheFirst(req *http.Request, rev *Revision) *http.Response {
	ctx := req.Context()

	if cached, err := r.cache.Match(ctx, req); err == nil {
		r.metrics.served(CacheFirst, outcomeHit)
		return cached
	} else if !errors.Is(err, ErrCacheMiss) {
		r.logger.Err(err).Str("func", "*Router.cacheFirst").Msg("cache lookup failed")
	}

	resp, err := r.fetch(req, rev.StaticCache)
	if err == nil {
		r.metrics.served(CacheFirst, outcomeNetwork)
		return resp
	}
	r.logger.Debug().Err(err).Str("func", "*Router.cacheFirst").Str("url", req.URL.String()).Msg("network failed")

	if isNavigation(req) {
		if root := r.rootDocument(req); root != nil {
			r.metrics.served(CacheFirst, outcomeFallback)
			return root
		}
		r.metrics.served(CacheFirst, outcomeSynthetic)
		return textResponse(req, msgOffline)
	}

	r.metrics.served(CacheFirst, outcomeSynthetic)
	return textResponse(req, msgUnavailable)
}

func (r *Router) networkFirst(req *http.Request, rev *Revision) *http.Response {
	ctx := req.Context()

	partition := ""
	if isPlantInfo(req) {
		partition = rev.DynamicCache
	}

	resp, err := r.fetch(req, partition)
	if err == nil {
		r.metrics.served(NetworkFirst, outcomeNetwork)
		return resp
	}
	r.logger.Debug().Err(err).Str("func", "*Router.networkFirst").Str("url", req.URL.String()).Msg("network failed, trying cache")

	if cached, err := r.cache.Match(ctx, req); err == nil {
		r.metrics.served(NetworkFirst, outcomeFallback)
		return cached
	}

	if isPlantInfo(req) {
		r.metrics.served(NetworkFirst, outcomeDefault)
		return jsonResponse(req, http.StatusOK, models.DefaultPlantInfo(), false)
	}

	r.metrics.served(NetworkFirst, outcomeSynthetic)
	return jsonResponse(req, http.StatusServiceUnavailable, models.ErrorResponse{Error: msgNoInternet, Offline: true}, true)
}

func (r *Router) staleWhileRevalidate(req *http.Request, rev *Revision) *http.Response {
	ctx := req.Context()

	if cached, err := r.cache.MatchIn(ctx, rev.DynamicCache, req); err == nil {
		r.metrics.served(StaleWhileRevalidate, outcomeHit)
		r.revalidate(req, rev.DynamicCache)
		return cached
	}

	resp, err := r.fetch(req, rev.DynamicCache)
	if err != nil {
		r.logger.Debug().Err(err).Str("func", "*Router.staleWhileRevalidate").Str("url", req.URL.String()).Msg("network failed")
		r.metrics.served(StaleWhileRevalidate, outcomeSynthetic)
		return textResponse(req, "resource unavailable")
	}

	r.metrics.served(StaleWhileRevalidate, outcomeNetwork)
	return resp
}

// revalidate refreshes the cached copy of req in the background.
func (r *Router) revalidate(req *http.Request, partition string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), r.revalidateTimeout)
	bg := req.Clone(ctx)

	r.revalidations.Add(1)
	go func() {
		defer r.revalidations.Done()
		defer cancel()

		_, err := r.fetch(bg, partition)
		if err != nil {
			r.logger.Debug().Err(err).Str("func", "*Router.revalidate").Str("url", bg.URL.String()).Msg("revalidation failed")
		}
		r.metrics.revalidated(err == nil)
	}()
}

// fetch performs the network round trip. A successful response is stored
// in partition when one is given. Only transport failures are errors; an
// HTTP error status is returned as is and never cached.
func (r *Router) fetch(req *http.Request, partition string) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if partition == "" || !ok(resp) {
		return resp, nil
	}

	stored, err := r.cache.Put(req.Context(), partition, req, resp)
	if stored == nil {
		return nil, err
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*Router.fetch").Msg("failed to store response")
	}

	return stored, nil
}

// rootDocument returns the cached "/" or "/index.html" of req's origin.
func (r *Router) rootDocument(req *http.Request) *http.Response {
	for _, path := range []string{"/", "/index.html"} {
		u := *req.URL
		u.Path, u.RawPath, u.RawQuery, u.Fragment = path, "", "", ""

		rootReq, err := http.NewRequestWithContext(req.Context(), http.MethodGet, u.String(), nil)
		if err != nil {
			continue
		}
		if cached, err := r.cache.Match(req.Context(), rootReq); err == nil {
			cached.Request = req
			return cached
		}
	}

	return nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

func offlineHeader(contentType string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", contentType)
	h.Set(models.OfflineHeader, "1")
	return h
}

func textResponse(req *http.Request, msg string) *http.Response {
	return utils.NewResponse(req, http.StatusServiceUnavailable, offlineHeader("text/plain; charset=utf-8"), []byte(msg))
}

func jsonResponse(req *http.Request, status int, data any, offline bool) *http.Response {
	resp, err := utils.NewJSONResponse(req, status, data)
	if err != nil {
		return textResponse(req, msgUnavailable)
	}
	if offline {
		resp.Header.Set(models.OfflineHeader, "1")
	}
	return resp
}
