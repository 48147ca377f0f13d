// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. Instances are pooled per
// Hasher, so one Hasher is safe for concurrent use.
//
// A Hasher built with an empty key is disabled: Enabled reports false and
// SumHex returns "".
type Hasher struct {
	key  []byte
	pool sync.Pool
}

// NewHasher returns a Hasher for key.
func NewHasher(key string) *Hasher {
	h := &Hasher{key: []byte(key)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.key)
	}
	return h
}

// Enabled reports whether a key was configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.key) > 0
}

// Sum returns the raw digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	defer h.pool.Put(mac)

	mac.Reset()
	mac.Write(data)
	return mac.Sum(nil)
}

// SumHex returns the hex-encoded digest of data, or "" when disabled.
func (h *Hasher) SumHex(data []byte) string {
	if !h.Enabled() {
		return ""
	}
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether sumHex is the digest of data. A disabled Hasher
// accepts everything.
func (h *Hasher) Verify(data []byte, sumHex string) bool {
	if !h.Enabled() {
		return true
	}
	expected, err := hex.DecodeString(sumHex)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), expected)
}
