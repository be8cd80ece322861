// Package poseidon implements the Poseidon2 permutation over the KoalaBear
// field using gnark-crypto, at the two widths this scheme actually runs the
// permutation at (16 and 24 — see DESIGN.md for why 5 and 8, also named in
// spec.md §3, never become raw permutation widths).
package poseidon

import (
	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/gnark-crypto/field/koalabear/poseidon2"
)

// Element is a KoalaBear field element.
type Element = koalabear.Element

// Poseidon2 wraps a gnark-crypto Poseidon2 permutation fixed to one width.
type Poseidon2 struct {
	perm  *poseidon2.Permutation
	width int
}

// External/internal round counts, matching the published KoalaBear
// instantiations at these widths (same round counts as the BabyBear
// configurations the teacher wraps — both are 31-bit small fields using
// the same Plonky3-derived Poseidon2 parameter sets).
const (
	width16ExternalRounds = 8
	width16InternalRounds = 13

	width24ExternalRounds = 8
	width24InternalRounds = 21
)

// New creates a Poseidon2 permutation for one of the two supported widths.
// Any other width panics — spec.md §9 says to reject configurations that
// call for untested widths rather than guess at round constants.
func New(width int) *Poseidon2 {
	switch width {
	case 16:
		return &Poseidon2{perm: poseidon2.NewPermutation(16, width16ExternalRounds, width16InternalRounds), width: 16}
	case 24:
		return &Poseidon2{perm: poseidon2.NewPermutation(24, width24ExternalRounds, width24InternalRounds), width: 24}
	default:
		panic("poseidon: unsupported width, only 16 and 24 are published KoalaBear Poseidon2 configurations")
	}
}

// New16 creates the width-16 permutation (chain/tree tweakable hash sponge).
func New16() *Poseidon2 { return New(16) }

// New24 creates the width-24 permutation (message-hash sponge).
func New24() *Poseidon2 { return New(24) }

// Permute applies the permutation in place.
func (p *Poseidon2) Permute(state []Element) {
	if len(state) != p.width {
		panic("poseidon: state size mismatch")
	}
	if err := p.perm.Permutation(state); err != nil {
		panic("poseidon: permutation failed: " + err.Error())
	}
}

// Width returns the permutation's fixed state width.
func (p *Poseidon2) Width() int {
	return p.width
}
