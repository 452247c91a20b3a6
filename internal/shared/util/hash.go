package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey derives the per-user storage directory name from a user ID.
// Hex sha256 keeps the on-disk layout free of whatever characters the ID
// format carries.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
