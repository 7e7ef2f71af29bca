// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_NestedPrefixes(t *testing.T) {
	t.Setenv("APP_VERSION", "4.0.0")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("STORAGE_LOCAL_DSN", "env.db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("WORKERS_SYNC_INTERVAL", "30s")
	t.Setenv("CACHE_STATIC_ASSETS", "/,/index.html")
	t.Setenv("CONFIG", "/etc/agro.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "4.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "env.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, []string{"/", "/index.html"}, cfg.Cache.StaticAssets)
	assert.Equal(t, "/etc/agro.json", cfg.JSONFilePath)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("WORKERS_SYNC_INTERVAL", "often")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
