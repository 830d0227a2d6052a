// Package cryptox holds the hashing helpers used to detect no-op field saves.
package cryptox

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ContentHash returns the hex BLAKE2b-256 digest of v's JSON encoding.
// encoding/json sorts map keys, so equal trees hash equally regardless of
// insertion order.
func ContentHash(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("hash encode: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
