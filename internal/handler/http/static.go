// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/MKhiriev/go-agro-sync/internal/logger"
	"github.com/go-chi/chi/v5"
)

const indexFile = "index.html"

// serveStatic serves files below the static directory. Unknown paths get
// index.html so client-side routes load the app shell.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if name == "" {
		name = indexFile
	}

	root, err := os.OpenRoot(h.staticDir)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.serveStatic").Msg("static directory unavailable")
		http.NotFound(w, r)
		return
	}
	defer root.Close()

	f, info, err := openFile(root, name)
	if errors.Is(err, fs.ErrNotExist) && name != indexFile {
		f, info, err = openFile(root, indexFile)
	}
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// openFile opens a regular file; directories count as missing.
func openFile(root *os.Root, name string) (*os.File, fs.FileInfo, error) {
	f, err := root.Open(name)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fs.ErrNotExist
	}

	return f, info, nil
}
