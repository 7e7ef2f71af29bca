// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-agro-sync/internal/config"
)

// Revision is one generation of the worker's cache layout. Partition names
// are suffixed with the version so a version bump rotates them wholesale.
type Revision struct {
	Version      string
	Tag          string
	StaticCache  string
	DynamicCache string
	Manifest     []string
}

// NewRevision derives partition names from the cache config, e.g. name
// "agroia" and version "v2.1.0" give "agroia-static-v2.1.0".
func NewRevision(cfg config.ClientCache) Revision {
	return Revision{
		Version:      cfg.Version,
		Tag:          fmt.Sprintf("%s-pwa-%s", cfg.Name, cfg.Version),
		StaticCache:  fmt.Sprintf("%s-static-%s", cfg.Name, cfg.Version),
		DynamicCache: fmt.Sprintf("%s-dynamic-%s", cfg.Name, cfg.Version),
		Manifest:     slices.Clone(cfg.StaticAssets),
	}
}

// owns reports whether partition belongs to this revision.
func (r Revision) owns(partition string) bool {
	return partition == r.StaticCache || partition == r.DynamicCache
}
