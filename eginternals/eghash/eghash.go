// Package eghash contains the digest primitives used to name commits
// and blobs
package eghash

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
)

const (
	// DigestSize is the length of a digest, in bytes
	DigestSize = 20

	// TimeFormat is the layout of the timestamp that seeds a commit
	// digest (and matches the repository's log timestamps)
	TimeFormat = "20060102 15-04-05"
)

var (
	// NullDigest is the value of an empty Digest, or one that's all 0s
	NullDigest = Digest{}

	// ErrInvalidDigest is returned when a given value isn't a valid
	// Digest
	ErrInvalidDigest = errors.New("invalid digest")
)

// Digest represents the identity of a commit or of a blob.
// It's a SHA-1 sum, rendered as 40 hexadecimal chars on disk
type Digest [DigestSize]byte

// Bytes returns a byte slice of the Digest
func (d Digest) Bytes() []byte {
	return d[:]
}

// String converts a digest to its hexadecimal representation
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero returns whether the digest has the zero value (NullDigest)
func (d Digest) IsZero() bool {
	return d == NullDigest
}

// Sum returns the Digest of the given content.
// The digest is the SHA-1 sum of the content
func Sum(bytes []byte) Digest {
	return sha1.Sum(bytes)
}

// NewDigestFromStr creates a Digest from the given string
// For the SHA 9b91da06e69613397b38e0808e0ba5ee6983251b
// the digest will be {0x9b, 0x91, 0xda, ...}
func NewDigestFromStr(id string) (Digest, error) {
	bytes, err := hex.DecodeString(id)
	if err != nil {
		return NullDigest, ErrInvalidDigest
	}
	if len(bytes) != DigestSize {
		return NullDigest, ErrInvalidDigest
	}

	var d Digest
	copy(d[:], bytes)
	return d, nil
}

// NewDigestFromChars creates a Digest from the given char bytes
// For the SHA {'9', 'b', '9', '1', 'd', 'a', ...}
// the digest will be {0x9b, 0x91, 0xda, ...}
func NewDigestFromChars(id []byte) (Digest, error) {
	return NewDigestFromStr(string(id))
}
