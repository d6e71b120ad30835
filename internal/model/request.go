package model

import (
	"fmt"

	"github.com/lumipallolabs/hashseek/internal/digest"
)

// ScanRequest describes a single hash search
type ScanRequest struct {
	Root           string
	Target         string
	Algorithm      digest.Algorithm
	SkipRestricted bool
}

// Normalize lower-cases the target and resolves an unspecified algorithm
// from the target length. An explicit algorithm must agree with the length.
func (r ScanRequest) Normalize() (ScanRequest, error) {
	r.Target = digest.NormalizeDigest(r.Target)

	inferred, err := digest.ForDigest(r.Target)
	if err != nil {
		return r, err
	}

	switch r.Algorithm {
	case digest.Unspecified:
		r.Algorithm = inferred
	case digest.MD5, digest.SHA256:
		if r.Algorithm.HexLen() != len(r.Target) {
			return r, fmt.Errorf("%w: %s digests are %d characters, got %d",
				digest.ErrInvalidDigestLength, r.Algorithm, r.Algorithm.HexLen(), len(r.Target))
		}
	default:
		return r, fmt.Errorf("%w: %d", digest.ErrInvalidAlgorithm, int(r.Algorithm))
	}
	return r, nil
}
