package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// HashLength is the length of a ledger hash in bytes.
const HashLength = sha256.Size

// Hash is a sha256 digest identifying transactions and payloads.
type Hash [HashLength]byte

// NewHash hashes the given bytes.
func NewHash(data []byte) Hash {
	return sha256.Sum256(data)
}

// HashFromHex decodes a hash from its hex string rendering.
func HashFromHex(s string) (Hash, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, errors.Wrap(err, "failed to decode hash hex")
	}
	if len(bz) != HashLength {
		return Hash{}, errors.Errorf("invalid hash length: expected %d, got %d", HashLength, len(bz))
	}
	var h Hash
	copy(h[:], bz)
	return h, nil
}

func (h Hash) Bytes() []byte {
	return h[:]
}

// String renders the hash as uppercase hex, the form used in event
// attributes and tx queries.
func (h Hash) String() string {
	return fmt.Sprintf("%X", h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}
