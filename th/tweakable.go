// Package th defines the tweakable-hash core (spec.md §4.C) and the
// hash-chain stepping helper built on it (spec.md §4.F).
package th

import "github.com/openhashsig/koala-xmss/field"

// Params is the scheme's public Poseidon2 domain-separation salt (§3),
// created once at key generation and never mutated.
type Params []field.Element

// Domain is a tweakable-hash output, or an intermediate/endpoint value in a
// Winternitz chain (§3) — always a fixed-length vector of field elements.
type Domain []field.Element

// Clone returns a copy of d, safe to mutate independently.
func (d Domain) Clone() Domain {
	c := make(Domain, len(d))
	copy(c, d)
	return c
}

// Equal reports whether d and other hold the same field elements.
func (d Domain) Equal(other Domain) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !field.Equal(d[i], other[i]) {
			return false
		}
	}
	return true
}

// TweakableHash is the domain-separated hash family H(parameter, tweak,
// input) -> Domain described in spec.md §4.C. Implementations are total
// (never fail): a malformed input length is a programmer error, not a
// reportable failure mode.
type TweakableHash interface {
	// Apply computes H(parameter, tweak, message).
	Apply(parameter Params, tweak Tweak, message []Domain) Domain

	// OutputLen returns h, the length (in field elements) of Apply's result.
	OutputLen() int

	// ParameterLen returns P, the length (in field elements) of Params.
	ParameterLen() int
}

// Chain walks a Winternitz hash chain `steps` times starting from `start`,
// which sits at position `startPosInChain` within the chain (§4.F,
// Construction 2). Used identically by KeyGen (walking a full chain,
// startPosInChain=0, steps=w-1) and by Sign/Verify (walking a partial
// remainder from a signature value).
func Chain(h TweakableHash, parameter Params, epoch uint64, chainIndex, startPosInChain uint32, steps int, start Domain) Domain {
	current := start.Clone()
	for j := 0; j < steps; j++ {
		tweak := ChainTweak(epoch, chainIndex, startPosInChain+uint32(j)+1)
		current = h.Apply(parameter, tweak, []Domain{current})
	}
	return current
}
