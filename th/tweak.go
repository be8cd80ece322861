package th

import "github.com/openhashsig/koala-xmss/field"

// Tag bytes distinguishing the three tweak kinds (§4.C). Included in every
// packed tweak so that, e.g., a Tree tweak and a Chain tweak with numerically
// equal fields never collide.
const (
	TagTreeHash    byte = 0x00
	TagChainHash   byte = 0x01
	TagMessageHash byte = 0x02
)

// Tweak is a packed, domain-separated label (Tree/Chain/Message, §4.C). It
// carries its fields pre-packed (tag byte low, then each field byte-aligned
// above it, little-endian) as a single accumulator; Pack expands that
// accumulator into the requested number of field elements via base-p digit
// decomposition, mirroring the teacher's tweakToFieldElements approach
// (th/tweak_hash/poseidon.go) generalized to arbitrary tweak widths.
//
// Byte-aligning each field (rather than packing to the exact bit width
// spec.md §4.C enumerates, e.g. ⌈log2 v⌉ bits for chain_index) is a
// deliberate simplification: this scheme already requires v<=256 and
// w<=256 (xmss.go's own construction-time checks), so chain_index and step
// always fit exactly one byte, and lifetime_log2 <= 32 means epoch/position
// always fit four. Byte-aligned packing costs nothing additional once every
// field already saturates its aligned width, and keeps Pack a single,
// uniform routine instead of a bit-level packer.
type Tweak struct {
	acc uint64
}

// TreeTweak packs (level, position) for an internal Merkle node (§4.C,
// Eq. 18-equivalent): tag | level (1 byte) | position (4 bytes).
func TreeTweak(level uint8, position uint64) Tweak {
	return Tweak{acc: uint64(TagTreeHash) | uint64(level)<<8 | (position&0xffffffff)<<16}
}

// ChainTweak packs (epoch, chain_index, step) for a Winternitz chain step
// (§4.C): tag | epoch (4 bytes) | chain_index (1 byte) | step (1 byte).
func ChainTweak(epoch uint64, chainIndex, step uint32) Tweak {
	return Tweak{
		acc: uint64(TagChainHash) |
			(epoch&0xffffffff)<<8 |
			uint64(uint8(chainIndex))<<40 |
			uint64(uint8(step))<<48,
	}
}

// MessageTweak packs the epoch for message-digest hashing (§4.C): tag |
// epoch (4 bytes).
func MessageTweak(epoch uint64) Tweak {
	return Tweak{acc: uint64(TagMessageHash) | (epoch&0xffffffff)<<8}
}

// Pack expands the tweak into n field elements via little-endian base-p
// digit decomposition of the packed accumulator.
func (t Tweak) Pack(n int) []field.Element {
	out := make([]field.Element, n)
	acc := t.acc
	for i := 0; i < n; i++ {
		out[i] = field.FromCanonical(acc % field.P)
		acc /= field.P
	}
	return out
}

// Tag returns the tweak kind's domain-separation tag byte.
func (t Tweak) Tag() byte {
	return byte(t.acc & 0xff)
}

// Bytes returns the tweak's packed accumulator as 8 little-endian bytes,
// for byte-oriented (non-sponge) tweakable hash backends.
func (t Tweak) Bytes() []byte {
	acc := t.acc
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(acc)
		acc >>= 8
	}
	return out
}

// BytesToDomain packs data into n field elements, 4 bytes (little-endian)
// per element per the wire encoding (§6); data is zero-padded to a multiple
// of 4 bytes if needed, and truncated/zero-extended to exactly n elements.
func BytesToDomain(data []byte, n int) Domain {
	out := make(Domain, n)
	for i := 0; i < n; i++ {
		lo := i * 4
		hi := lo + 4
		if lo >= len(data) {
			out[i] = field.Zero()
			continue
		}
		if hi > len(data) {
			var buf [4]byte
			copy(buf[:], data[lo:])
			out[i] = field.FromBytes(buf[:])
			continue
		}
		out[i] = field.FromBytes(data[lo:hi])
	}
	return out
}

// DomainToBytes serializes d as 4 little-endian bytes per element (§6).
func DomainToBytes(d Domain) []byte {
	out := make([]byte, 0, len(d)*4)
	for _, e := range d {
		out = append(out, field.ToBytes(e)...)
	}
	return out
}
