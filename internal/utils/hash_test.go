// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			input:    "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HashString(tt.input))
		})
	}
}

func TestHash_Length(t *testing.T) {
	assert.Len(t, Hash([]byte("payload")), 32)
}

func TestHash_PoolIsStateless(t *testing.T) {
	first := HashString("first")
	_ = HashString("second")
	assert.Equal(t, first, HashString("first"))
}

func TestHash_ConcurrentUse(t *testing.T) {
	want := HashString("concurrent")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, HashString("concurrent"))
		}()
	}
	wg.Wait()
}
