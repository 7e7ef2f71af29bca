// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client for baseURL. A bare "host:port"
// address gets an "http://" scheme. A nil transport keeps resty's default.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:3000", 15*time.Second, nil)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration, transport http.RoundTripper) *HTTPClient {
	c := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if transport != nil {
		c.SetTransport(transport)
	}

	return &HTTPClient{Client: c}
}

// NormalizeBaseURL prefixes addr with "http://" unless it already has a scheme
// and strips a trailing slash.
func NormalizeBaseURL(addr string) string {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}

	return strings.TrimRight(addr, "/")
}
