// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"sync"
)

// md5Pool reuses MD5 states across requests; images are hashed on every
// analysis and sync item.
var md5Pool = sync.Pool{
	New: func() any {
		return md5.New()
	},
}

// ImageHash returns the hex-encoded MD5 digest of an encoded image. Only the
// digest is stored; the image itself never reaches the database.
//
// Example usage:
//
//	hash := utils.ImageHash("data:image/jpeg;base64,/9j/4AAQ...")
func ImageHash(image string) string {
	h := md5Pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(image))
	sum := h.Sum(nil)

	h.Reset()
	md5Pool.Put(h)

	return hex.EncodeToString(sum)
}
