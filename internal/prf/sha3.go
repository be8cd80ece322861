package prf

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/openhashsig/koala-xmss/field"
	"github.com/openhashsig/koala-xmss/th"
)

// sha3DomainSep distinguishes this alternate, non-algebraic PRF from the
// SHAKE128 one above; arbitrary but fixed, mirroring the teacher's own
// separate domain-separator constant for its plain-SHA3 PRF path.
var sha3DomainSep = []byte{0x00, 0x01, 0x12, 0xFF, 0x00, 0x01, 0xFA, 0xFF, 0x00, 0xAF, 0x12, 0xFF, 0x01, 0xFA, 0xFF, 0x00}

// SHA3 is the alternate PRF backend built on plain SHA3-256 rather than
// SHAKE128, for use alongside tweakhash.SHA3 as a second concrete,
// non-algebraic instantiation of every hash-shaped interface in the scheme.
type SHA3 struct {
	domainLen int
	randLen   int
}

// NewSHA3 builds a SHA3-256-based PRF, lengths in field elements.
func NewSHA3(domainLen, randLen int) *SHA3 {
	return &SHA3{domainLen: domainLen, randLen: randLen}
}

// DomainLen returns the number of field elements GetDomainElement produces.
func (p *SHA3) DomainLen() int { return p.domainLen }

// RandLen returns the number of field elements GetRandomness produces.
func (p *SHA3) RandLen() int { return p.randLen }

func sha3ToField(h []byte, n int) th.Domain {
	out := make(th.Domain, n)
	for i := 0; i < n; i++ {
		lo := i * 4
		hi := lo + 4
		var chunk [4]byte
		if lo < len(h) {
			end := hi
			if end > len(h) {
				end = len(h)
			}
			copy(chunk[:], h[lo:end])
		}
		v := binary.BigEndian.Uint32(chunk[:])
		out[i] = field.FromCanonical(uint64(v) % field.P)
	}
	return out
}

// GetDomainElement derives a chain-start vector, SHA3-256 backed.
func (p *SHA3) GetDomainElement(key [KeyLen]byte, epoch uint32, index uint64) th.Domain {
	h := newSHA3Hasher(sha3DomainSep, separatorDomain, key, epoch)
	var indexBuf [8]byte
	binary.BigEndian.PutUint64(indexBuf[:], index)
	h.Write(indexBuf[:])
	return sha3ToField(h.Sum(nil), p.domainLen)
}

// GetRandomness derives per-signature randomness, SHA3-256 backed.
func (p *SHA3) GetRandomness(key [KeyLen]byte, epoch uint32, message []byte, counter uint64) th.Domain {
	h := newSHA3Hasher(sha3DomainSep, separatorRand, key, epoch)
	h.Write(message)
	var counterBuf [8]byte
	binary.BigEndian.PutUint64(counterBuf[:], counter)
	h.Write(counterBuf[:])
	return sha3ToField(h.Sum(nil), p.randLen)
}

func newSHA3Hasher(sep []byte, tag byte, key [KeyLen]byte, epoch uint32) hash.Hash {
	h := sha3.New256()
	h.Write(sep)
	h.Write([]byte{tag})
	h.Write(key[:])
	var epochBuf [4]byte
	binary.BigEndian.PutUint32(epochBuf[:], epoch)
	h.Write(epochBuf[:])
	return h
}
