// Package targetsum implements the Target-Sum incomparable encoding
// (Construction 6): chunks decoded straight from the digest, accepted
// only when they sum to a fixed target T. Rejection-sampled: the caller
// retries with fresh randomness (a new counter into PRF.GetRandomness)
// until an attempt lands on T.
//
// Supplemented beyond spec.md's core (§4.E only specifies Winternitz): a
// second incomparable encoding, grounded on the teacher's own
// encoding/targetsum package, offered as an alternative to the checksum
// construction with a shorter but probabilistic codeword.
package targetsum

import (
	"fmt"

	"github.com/openhashsig/koala-xmss/encoding"
	"github.com/openhashsig/koala-xmss/internal/bitutil"
)

// TargetSum is the Target-Sum encoding: v chunks read directly off the
// digest, accepted only if their sum equals target.
type TargetSum struct {
	chunkSize int
	dimension int
	target    int
}

// New creates a Target-Sum encoding. target should be close to
// dimension*(2^chunkSize-1)/2 for the best acceptance rate (see
// ComputeOptimalTarget).
func New(chunkSize, dimension, target int) *TargetSum {
	base := 1 << chunkSize
	maxSum := dimension * (base - 1)
	if target < 0 || target > maxSum {
		panic(fmt.Sprintf("targetsum: target %d out of range [0, %d]", target, maxSum))
	}
	return &TargetSum{chunkSize: chunkSize, dimension: dimension, target: target}
}

// Encode reads v chunks from digest and accepts only if they sum to
// target; otherwise returns encoding.ErrEncodingFailed so the caller
// retries with a fresh digest (new randomness/counter).
func (t *TargetSum) Encode(digest []byte) (encoding.Codeword, error) {
	neededBytes := (t.dimension*t.chunkSize + 7) / 8
	if len(digest) < neededBytes {
		return nil, encoding.ErrInsufficientDigest
	}

	chunks, err := bitutil.BytesToChunks(digest[:neededBytes], t.chunkSize)
	if err != nil {
		return nil, err
	}
	chunks = chunks[:t.dimension]

	sum := 0
	for _, c := range chunks {
		sum += int(c)
	}
	if sum != t.target {
		return nil, fmt.Errorf("%w: sum %d != target %d", encoding.ErrEncodingFailed, sum, t.target)
	}

	return encoding.Codeword(chunks), nil
}

// Dimension returns v.
func (t *TargetSum) Dimension() int { return t.dimension }

// Base returns 2^chunkSize.
func (t *TargetSum) Base() int { return 1 << t.chunkSize }

// ChunkSize returns log2(base).
func (t *TargetSum) ChunkSize() int { return t.chunkSize }

// NeedsRetry is always true: acceptance is probabilistic.
func (t *TargetSum) NeedsRetry() bool { return true }

// Validate always returns nil: New already bounds target against
// [0, dimension*(base-1)] at construction, and Target-Sum has no
// checksum component to truncate.
func (t *TargetSum) Validate() error { return nil }

// ComputeOptimalTarget computes T = deltaPermille * dimension * (base-1) /
// 2000; deltaPermille around 1000-1100 (i.e. delta = 1.0-1.1) balances
// signature size against expected retries. Integer arithmetic only, per
// spec.md §9's guidance to avoid floating point in the core (this helper
// is tuning scaffolding, not part of Sign/Verify, but follows the same
// rule).
func ComputeOptimalTarget(dimension, chunkSize, deltaPermille int) int {
	base := 1 << chunkSize
	return deltaPermille * dimension * (base - 1) / 2000
}
