// Package encoding implements incomparable encodings (spec.md §4.E):
// mapping a message digest to v chunk values in [0, w) such that no two
// distinct codewords dominate each other in every coordinate.
package encoding

import "errors"

// ErrInsufficientDigest is returned when a digest is shorter than an
// encoding requires.
var ErrInsufficientDigest = errors.New("encoding: digest shorter than required")

// ErrEncodingFailed signals a Target-Sum-style encoding attempt didn't land
// on the required checksum; the caller should retry with a fresh counter
// (and hence a fresh per-signature randomness).
var ErrEncodingFailed = errors.New("encoding: attempt rejected, retry with new randomness")

// ErrChecksumTooSmall signals an encoding's checksum (or equivalent
// redundancy) component is too narrow to represent every value it must
// carry, silently truncating high-order chunks and breaking the
// encoding's incomparability guarantee (spec.md §4.E, §6, §7).
var ErrChecksumTooSmall = errors.New("encoding: checksum chunks too narrow for maximum checksum value")

// Codeword is an encoded digest: v chunk values, each in [0, w).
type Codeword []uint8

// IncomparableEncoding maps a message digest to a Codeword (§4.E).
type IncomparableEncoding interface {
	// Encode maps digest to v chunk values. Returns ErrInsufficientDigest
	// if digest is too short, or ErrEncodingFailed if NeedsRetry is true
	// and this attempt didn't satisfy the encoding's acceptance condition.
	Encode(digest []byte) (Codeword, error)

	// Dimension returns v, the number of chunks in a codeword.
	Dimension() int

	// Base returns w, the number of values per chunk.
	Base() int

	// ChunkSize returns log2(w) in bits.
	ChunkSize() int

	// NeedsRetry reports whether Encode can fail and require a retry with
	// fresh randomness (true for Target-Sum, false for Winternitz).
	NeedsRetry() bool

	// Validate reports any internal inconsistency in the encoding's own
	// fixed parameters (e.g. too few checksum chunks for the maximum
	// possible checksum). Implementations with no such invariant return
	// nil. Called once, at Scheme construction.
	Validate() error
}
