// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string using
// the provided key and returns the result as a hex-encoded string.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyHMAC reports whether signature is the valid hex HMAC-SHA256 of data
// under the given key. Comparison is constant-time.
func VerifyHMAC(data, signature, hashKey string) bool {
	expected := HashString(data, hashKey)
	return hmac.Equal([]byte(expected), []byte(signature))
}
