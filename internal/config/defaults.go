// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultStaticAssets mirrors the web shell served by the ingestion server.
var defaultStaticAssets = []string{
	"/",
	"/index.html",
	"/style.css",
	"/script.js",
	"/manifest.json",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "2.1.0",
			LogLevel: "debug",
		},
		Storage: Storage{
			Local: Local{DSN: "agro-client.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:  5 * time.Minute,
			ProbeInterval: 5 * time.Second,
		},
		Cache: Cache{
			Name:         "agroia",
			Version:      "v2.1.0",
			StaticAssets: append([]string(nil), defaultStaticAssets...),
		},
	}
}
