// Package tweakhash provides concrete th.TweakableHash implementations.
package tweakhash

import (
	"github.com/openhashsig/koala-xmss/field"
	"github.com/openhashsig/koala-xmss/poseidon"
	"github.com/openhashsig/koala-xmss/th"
)

// Poseidon implements th.TweakableHash via a Poseidon2 sponge (§4.C,
// Construction 1). Chain and Tree tweaks run the width-16 sponge; Message
// tweaks run the width-24 sponge, since a message digest absorbs far more
// input (the randomized, encoded message) than a single chain step.
type Poseidon struct {
	parameterLen int
	hashLen      int
	tweakLen     int

	perm16 *poseidon.Poseidon2
	perm24 *poseidon.Poseidon2
}

// NewPoseidon builds a Poseidon2-backed tweakable hash. parameterLen and
// hashLen are lengths in field elements (P and h in §3); tweakLen is the
// number of field elements Tweak.Pack produces.
func NewPoseidon(parameterLen, hashLen, tweakLen int) *Poseidon {
	return &Poseidon{
		parameterLen: parameterLen,
		hashLen:      hashLen,
		tweakLen:     tweakLen,
		perm16:       poseidon.New16(),
		perm24:       poseidon.New24(),
	}
}

// Apply computes H(parameter, tweak, message) via sponge(capacity =
// parameter||tweak, rate = width-capacity).
func (p *Poseidon) Apply(parameter th.Params, tweak th.Tweak, message []th.Domain) th.Domain {
	perm := p.perm16
	if tweak.Tag() == th.TagMessageHash {
		perm = p.perm24
	}
	width := perm.Width()

	capacity := make([]field.Element, 0, p.parameterLen+p.tweakLen)
	capacity = append(capacity, parameter...)
	capacity = append(capacity, tweak.Pack(p.tweakLen)...)
	if len(capacity) > width {
		panic("tweakhash: capacity exceeds permutation width")
	}
	rate := width - len(capacity)

	var input []field.Element
	for _, d := range message {
		input = append(input, d...)
	}

	state := make([]field.Element, width)
	copy(state[rate:], capacity)

	for i := 0; i < len(input); i += rate {
		end := i + rate
		if end > len(input) {
			end = len(input)
		}
		for j := 0; j < end-i; j++ {
			state[j] = field.Add(state[j], input[i+j])
		}
		perm.Permute(state)
	}
	if len(input) == 0 {
		perm.Permute(state)
	}

	out := make(th.Domain, p.hashLen)
	copy(out, state[:p.hashLen])
	return out
}

// OutputLen returns h, in field elements.
func (p *Poseidon) OutputLen() int { return p.hashLen }

// ParameterLen returns P, in field elements.
func (p *Poseidon) ParameterLen() int { return p.parameterLen }
