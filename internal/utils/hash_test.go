// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageHash_KnownValues(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ImageHash(""))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", ImageHash("abc"))
}

func TestImageHash_Deterministic(t *testing.T) {
	img := "data:image/jpeg;base64,AAAA"
	assert.Equal(t, ImageHash(img), ImageHash(img))
	assert.NotEqual(t, ImageHash(img), ImageHash(img+"B"))
}

// TestImageHash_Concurrent checks pooled states are never shared mid-hash.
func TestImageHash_Concurrent(t *testing.T) {
	want := ImageHash("abc")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ImageHash("abc"))
		}()
	}
	wg.Wait()
}
