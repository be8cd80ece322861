// Package prf implements the deterministic key-derivation PRF (spec.md
// §4.D): a SHAKE128-based function mapping a secret key and an (epoch,
// index) pair, or an (epoch, message, counter) triple, to field elements.
package prf

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/openhashsig/koala-xmss/field"
	"github.com/openhashsig/koala-xmss/th"
)

// domainSep is absorbed before every input; separatorDomain/separatorRand
// follow it to distinguish get_domain_element from get_randomness calls
// against the same key.
var domainSep = []byte{0xAE, 0xAE, 0x22, 0xFF, 0x00, 0x01, 0xFA, 0xFF, 0x21, 0xAF, 0x12, 0x00, 0x01, 0x11, 0xFF, 0x00}

const (
	separatorDomain byte = 0x00
	separatorRand   byte = 0x01
)

// KeyLen is the length, in bytes, of a PRF key (§3, PRFKey).
const KeyLen = 32

// Source is the interface the signer depends on, satisfied by both PRF
// (SHAKE128) and SHA3 (plain SHA3-256) below.
type Source interface {
	GetDomainElement(key [KeyLen]byte, epoch uint32, index uint64) th.Domain
	GetRandomness(key [KeyLen]byte, epoch uint32, message []byte, counter uint64) th.Domain
	DomainLen() int
	RandLen() int
}

// PRF derives chain-start vectors and signature randomness from a secret
// key (§4.D).
type PRF struct {
	domainLen int
	randLen   int
}

// New creates a PRF producing domainLen field elements from
// GetDomainElement and randLen field elements from GetRandomness.
func New(domainLen, randLen int) *PRF {
	return &PRF{domainLen: domainLen, randLen: randLen}
}

func squeezeToField(shake sha3.ShakeHash, n int) th.Domain {
	raw := make([]byte, n*8)
	if _, err := shake.Read(raw); err != nil {
		panic("prf: shake read failed: " + err.Error())
	}
	out := make(th.Domain, n)
	for i := 0; i < n; i++ {
		v := binary.BigEndian.Uint64(raw[i*8 : i*8+8])
		out[i] = field.FromCanonical(v % field.P)
	}
	return out
}

// GetDomainElement derives the starting field-element vector of a
// Winternitz chain for (epoch, index) under key (§4.D).
func (p *PRF) GetDomainElement(key [KeyLen]byte, epoch uint32, index uint64) th.Domain {
	shake := sha3.NewShake128()
	shake.Write(domainSep)
	shake.Write([]byte{separatorDomain})
	shake.Write(key[:])

	var epochBuf [4]byte
	binary.BigEndian.PutUint32(epochBuf[:], epoch)
	shake.Write(epochBuf[:])

	var indexBuf [8]byte
	binary.BigEndian.PutUint64(indexBuf[:], index)
	shake.Write(indexBuf[:])

	return squeezeToField(shake, p.domainLen)
}

// GetRandomness derives the per-signature randomness rho for (epoch,
// message, counter) under key (§4.D). counter increments only when an
// encoding's rejection sampling needs a retry; Winternitz-with-checksum
// never retries.
func (p *PRF) GetRandomness(key [KeyLen]byte, epoch uint32, message []byte, counter uint64) th.Domain {
	shake := sha3.NewShake128()
	shake.Write(domainSep)
	shake.Write([]byte{separatorRand})
	shake.Write(key[:])

	var epochBuf [4]byte
	binary.BigEndian.PutUint32(epochBuf[:], epoch)
	shake.Write(epochBuf[:])

	shake.Write(message)

	var counterBuf [8]byte
	binary.BigEndian.PutUint64(counterBuf[:], counter)
	shake.Write(counterBuf[:])

	return squeezeToField(shake, p.randLen)
}

// DomainLen returns the number of field elements GetDomainElement produces.
func (p *PRF) DomainLen() int { return p.domainLen }

// RandLen returns the number of field elements GetRandomness produces.
func (p *PRF) RandLen() int { return p.randLen }
