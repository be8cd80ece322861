// Package seedexpander deterministically expands a 32-byte secret seed into
// a PRF key and a public Poseidon2 parameter vector (spec.md §4.D), using a
// 12-round ChaCha keystream (nonce = 0^12).
//
// No pack library exposes a configurable-round ChaCha: golang.org/x/crypto/
// chacha20 hardcodes 20 rounds. The quarter-round/column-round/diagonal-round
// structure below is the same published ChaCha permutation that library
// implements; only the round count differs, which is why this is
// hand-written rather than imported (see DESIGN.md).
package seedexpander

import "encoding/binary"

const rounds = 12

var chachaConstants = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// SeedExpander produces an arbitrary-length deterministic byte stream from a
// 32-byte seed, one 64-byte ChaCha12 block at a time.
type SeedExpander struct {
	key     [8]uint32
	counter uint32
	block   [64]byte
	pos     int
}

// New creates a seed expander keyed by a 32-byte seed, nonce fixed at
// 0^12 (this scheme has no use for nonce-based stream separation: one
// seed expands to exactly one (PRFKey, Parameter) pair).
func New(seed [32]byte) *SeedExpander {
	s := &SeedExpander{pos: 64}
	for i := 0; i < 8; i++ {
		s.key[i] = binary.LittleEndian.Uint32(seed[i*4 : i*4+4])
	}
	return s
}

func rotl(x uint32, n int) uint32 {
	return x<<n | x>>(32-n)
}

func quarterRound(state *[16]uint32, a, b, c, d int) {
	state[a] += state[b]
	state[d] ^= state[a]
	state[d] = rotl(state[d], 16)

	state[c] += state[d]
	state[b] ^= state[c]
	state[b] = rotl(state[b], 12)

	state[a] += state[b]
	state[d] ^= state[a]
	state[d] = rotl(state[d], 8)

	state[c] += state[d]
	state[b] ^= state[c]
	state[b] = rotl(state[b], 7)
}

// block12 computes one 64-byte ChaCha12 keystream block for the given
// counter, nonce fixed at zero.
func block12(key [8]uint32, counter uint32) [64]byte {
	var state [16]uint32
	state[0], state[1], state[2], state[3] = chachaConstants[0], chachaConstants[1], chachaConstants[2], chachaConstants[3]
	copy(state[4:12], key[:])
	state[12] = counter
	state[13], state[14], state[15] = 0, 0, 0

	working := state
	for r := 0; r < rounds/2; r++ {
		quarterRound(&working, 0, 4, 8, 12)
		quarterRound(&working, 1, 5, 9, 13)
		quarterRound(&working, 2, 6, 10, 14)
		quarterRound(&working, 3, 7, 11, 15)

		quarterRound(&working, 0, 5, 10, 15)
		quarterRound(&working, 1, 6, 11, 12)
		quarterRound(&working, 2, 7, 8, 13)
		quarterRound(&working, 3, 4, 9, 14)
	}

	var out [16]uint32
	for i := range out {
		out[i] = working[i] + state[i]
	}

	var b [64]byte
	for i, w := range out {
		binary.LittleEndian.PutUint32(b[i*4:i*4+4], w)
	}
	return b
}

// Read fills p with the next len(p) keystream bytes.
func (s *SeedExpander) Read(p []byte) (int, error) {
	n := len(p)
	for n > 0 {
		if s.pos == 64 {
			s.block = block12(s.key, s.counter)
			s.counter++
			s.pos = 0
		}
		c := copy(p[len(p)-n:], s.block[s.pos:])
		s.pos += c
		n -= c
	}
	return len(p), nil
}

// Expand returns the next n keystream bytes.
func (s *SeedExpander) Expand(n int) []byte {
	out := make([]byte, n)
	_, _ = s.Read(out)
	return out
}
