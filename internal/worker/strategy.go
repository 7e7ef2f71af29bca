// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"net/http"
	"strings"
)

// Strategy is how a request is sourced.
type Strategy int

const (
	PassThrough Strategy = iota
	CacheFirst
	NetworkFirst
	StaleWhileRevalidate
)

func (s Strategy) String() string {
	switch s {
	case CacheFirst:
		return "cache_first"
	case NetworkFirst:
		return "network_first"
	case StaleWhileRevalidate:
		return "stale_while_revalidate"
	default:
		return "pass_through"
	}
}

const (
	// APIPrefix is the path namespace served NETWORK_FIRST.
	APIPrefix = "/api/"
	// PlantInfoPath is the quasi-static reference-data endpoint.
	PlantInfoPath = "/api/plant-info"
)

// Classify picks the strategy for req. The manifest holds either absolute
// URLs or same-origin paths; a path entry matches only a request without a
// query string.
func Classify(req *http.Request, manifest []string) Strategy {
	if req.Method != http.MethodGet {
		return PassThrough
	}

	full := req.URL.String()
	for _, asset := range manifest {
		if asset == full {
			return CacheFirst
		}
		if strings.HasPrefix(asset, "/") && req.URL.RawQuery == "" && asset == requestPath(req) {
			return CacheFirst
		}
	}

	if strings.HasPrefix(requestPath(req), APIPrefix) {
		return NetworkFirst
	}

	return StaleWhileRevalidate
}

func isPlantInfo(req *http.Request) bool {
	return requestPath(req) == PlantInfoPath
}

// isNavigation reports whether req loads a document rather than a
// subresource.
func isNavigation(req *http.Request) bool {
	return req.Header.Get("Sec-Fetch-Dest") == "document" || req.Header.Get("Sec-Fetch-Mode") == "navigate"
}

func requestPath(req *http.Request) string {
	if req.URL.Path == "" {
		return "/"
	}
	return req.URL.Path
}
