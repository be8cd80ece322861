// Package winternitz implements the Winternitz checksum encoding (spec.md
// §4.E, Construction 5): an incomparable encoding that always succeeds
// (NeedsRetry is false).
package winternitz

import (
	"encoding/binary"
	"fmt"

	"github.com/openhashsig/koala-xmss/encoding"
	"github.com/openhashsig/koala-xmss/internal/bitutil"
)

// Winternitz is the checksum-appended chunk encoding: v_msg message chunks
// followed by v_chk checksum chunks, where the checksum is the sum of
// (w-1-chunk) over the message chunks.
type Winternitz struct {
	chunkSize int // log2(w), in {1, 2, 4, 8}
	numMsg    int // v_msg
	numChk    int // v_chk
}

// New creates a Winternitz encoding. chunkSize must be 1, 2, 4, or 8, and
// numChk must be large enough to represent the maximum possible checksum
// (minChecksumChunks); otherwise New panics, since both are fixed,
// caller-chosen constants rather than runtime configuration.
func New(chunkSize, numMsg, numChk int) *Winternitz {
	if chunkSize != 1 && chunkSize != 2 && chunkSize != 4 && chunkSize != 8 {
		panic("winternitz: chunk size must be 1, 2, 4, or 8")
	}
	base := 1 << chunkSize
	if needed := minChecksumChunks(base, numMsg); numChk < needed {
		panic(fmt.Sprintf("winternitz: numChk %d too small, need at least %d chunks to represent checksums up to %d", numChk, needed, numMsg*(base-1)))
	}
	return &Winternitz{chunkSize: chunkSize, numMsg: numMsg, numChk: numChk}
}

// minChecksumChunks returns the fewest base-w chunks that can represent
// any checksum in [0, numMsg*(w-1)] (spec.md §6's knob-table constraint:
// ceil(log_w(v_msg*(w-1)+1)) <= v_chk).
func minChecksumChunks(base, numMsg int) int {
	maxChecksum := numMsg * (base - 1)
	needed := 0
	for bound := 1; bound <= maxChecksum; bound *= base {
		needed++
	}
	return needed
}

// Encode implements §4.E steps 1-2. It never fails except on a digest too
// short to supply v_msg chunks.
func (w *Winternitz) Encode(digest []byte) (encoding.Codeword, error) {
	neededBytes := (w.numMsg*w.chunkSize + 7) / 8
	if len(digest) < neededBytes {
		return nil, encoding.ErrInsufficientDigest
	}

	msgChunks, err := bitutil.BytesToChunks(digest[:neededBytes], w.chunkSize)
	if err != nil {
		return nil, err
	}
	msgChunks = msgChunks[:w.numMsg]

	base := uint64(w.Base())
	var checksum uint64
	for _, c := range msgChunks {
		checksum += (base - 1) - uint64(c)
	}

	var checksumBytes [8]byte
	binary.LittleEndian.PutUint64(checksumBytes[:], checksum)

	checksumChunks, err := bitutil.BytesToChunks(checksumBytes[:], w.chunkSize)
	if err != nil {
		return nil, err
	}

	codeword := make(encoding.Codeword, 0, w.Dimension())
	codeword = append(codeword, msgChunks...)
	codeword = append(codeword, checksumChunks[:w.numChk]...)
	return codeword, nil
}

// Dimension returns v = v_msg + v_chk.
func (w *Winternitz) Dimension() int { return w.numMsg + w.numChk }

// Base returns w = 2^chunkSize.
func (w *Winternitz) Base() int { return 1 << w.chunkSize }

// ChunkSize returns log2(w).
func (w *Winternitz) ChunkSize() int { return w.chunkSize }

// NeedsRetry is always false: the checksum encoding always succeeds.
func (w *Winternitz) NeedsRetry() bool { return false }

// Validate reports encoding.ErrChecksumTooSmall if numChk can't represent
// every possible checksum value; New already enforces this at
// construction, so Validate exists to let Scheme construction check any
// IncomparableEncoding generically without special-casing Winternitz.
func (w *Winternitz) Validate() error {
	base := 1 << w.chunkSize
	if needed := minChecksumChunks(base, w.numMsg); w.numChk < needed {
		return fmt.Errorf("%w: numChk %d, need at least %d", encoding.ErrChecksumTooSmall, w.numChk, needed)
	}
	return nil
}
