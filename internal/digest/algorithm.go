package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"strings"
)

var (
	// ErrInvalidAlgorithm is returned for algorithm names other than md5 and sha256
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidDigestLength is returned when a target digest is neither 32 nor 64 hex characters
	ErrInvalidDigestLength = errors.New("invalid digest length")
)

// Algorithm selects the hash function used by the engine
type Algorithm int

const (
	// Unspecified lets the search flow infer the algorithm from the digest length
	Unspecified Algorithm = iota
	MD5
	SHA256
)

// String returns the lowercase algorithm name
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA256:
		return "sha256"
	default:
		return "unspecified"
	}
}

// HexLen returns the length of the hex digest produced by the algorithm
func (a Algorithm) HexLen() int {
	switch a {
	case MD5:
		return md5.Size * 2
	case SHA256:
		return sha256.Size * 2
	default:
		return 0
	}
}

// New returns a fresh hash accumulator for the algorithm
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, a)
	}
}

// ParseAlgorithm parses an algorithm name case-insensitively.
// An empty name selects SHA256.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha256", "sha-256":
		return SHA256, nil
	case "md5":
		return MD5, nil
	default:
		return Unspecified, fmt.Errorf("%w: %q (choose sha256 or md5)", ErrInvalidAlgorithm, name)
	}
}

// NormalizeDigest trims and lower-cases a hex digest for comparison
func NormalizeDigest(d string) string {
	return strings.ToLower(strings.TrimSpace(d))
}

// ForDigest infers the algorithm from the length of a hex digest
func ForDigest(d string) (Algorithm, error) {
	switch len(NormalizeDigest(d)) {
	case SHA256.HexLen():
		return SHA256, nil
	case MD5.HexLen():
		return MD5, nil
	default:
		return Unspecified, fmt.Errorf("%w: got %d characters, want 32 (md5) or 64 (sha256)",
			ErrInvalidDigestLength, len(NormalizeDigest(d)))
	}
}
