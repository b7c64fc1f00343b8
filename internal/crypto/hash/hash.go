package hash

import (
	"crypto/sha256"
)

type Hashable interface {
	GetHash() []byte
}

func HashString(data string) []byte {
	hash := sha256.Sum256([]byte(data))
	return hash[:]
}

func HashBytes(data []byte) []byte {
	bytes := sha256.Sum256(data)
	return bytes[:]
}

// HashParts hashes the parts with a zero byte between them, so that
// ("ab","c") and ("a","bc") produce different digests.
func HashParts(parts ...[]byte) []byte {
	hasher := sha256.New()

	for idx, part := range parts {
		if idx > 0 {
			hasher.Write([]byte{0})
		}
		hasher.Write(part)
	}

	return hasher.Sum(nil)
}
