// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-agro-sync/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>agro</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "icons"), 0o755))
	return dir
}

func TestServeStatic(t *testing.T) {
	dir := writeStaticDir(t)
	h, _ := newTestHandler(t, config.Server{StaticDir: dir})
	router := h.Init()

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "root", path: "/", wantBody: "<html>agro</html>"},
		{name: "index", path: "/index.html", wantBody: "<html>agro</html>"},
		{name: "asset", path: "/style.css", wantBody: "body{}"},
		{name: "client route falls back", path: "/history/42", wantBody: "<html>agro</html>"},
		{name: "directory falls back", path: "/icons", wantBody: "<html>agro</html>"},
		{name: "traversal stays inside", path: "/../../etc/passwd", wantBody: "<html>agro</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tt.path, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestServeStatic_NoIndex(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{StaticDir: t.TempDir()})

	rec := serve(h.Init(), http.MethodGet, "/missing.js", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeStatic_Disabled(t *testing.T) {
	h, _ := newTestHandler(t, config.Server{})

	rec := serve(h.Init(), http.MethodGet, "/index.html", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
