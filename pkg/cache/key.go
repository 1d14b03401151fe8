package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Key builds a cache key for a rendered artifact from its output format
// and generation parameters. The key format is: maze:<format>:hash(params).
//
// params is typically a render.Params value; anything JSON-marshalable
// works, and equal values always produce equal keys.
func Key(format string, params any) string {
	data, _ := json.Marshal(params)
	return fmt.Sprintf("maze:%s:%s", format, Hash(data))
}

// Hash computes a SHA-256 hash of the input data as a 64-character hex
// string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
