package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 hashers keyed with the process hash key.
// It must be initialised with InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool (re)initialises the shared pool of HMAC-SHA256 hashers with
// hashKey. Both the client adapter and the server hashing middleware call it
// once at startup.
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash returns the HMAC-SHA256 of data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// VerifyHash reports whether hexSum is the hex HMAC-SHA256 of data.
// The comparison is constant time.
func VerifyHash(data []byte, hexSum string) bool {
	want, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), want)
}

// HashString returns the hex HMAC-SHA256 of data with an explicit key,
// bypassing the pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
