// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned by NewServer when there is no ingestion API to
// serve: the handlers are missing or no HTTP address is configured.
var errNoHTTPServer = errors.New("ingestion server not created: no HTTP handler or address")
