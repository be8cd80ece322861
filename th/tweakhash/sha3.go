package tweakhash

import (
	"golang.org/x/crypto/sha3"

	"github.com/openhashsig/koala-xmss/th"
)

// SHA3 is the alternate, non-algebraic th.TweakableHash backend: Apply
// computes Truncate_h(SHA3-256(parameter || tweak || message)). Offered
// alongside Poseidon as a second concrete instantiation sharing the same
// field-element-native Domain/Params (converted to bytes at the hash
// boundary, not a parallel byte-oriented type hierarchy).
type SHA3 struct {
	parameterLen int
	hashLen      int
}

// NewSHA3 builds a SHA3-256 tweakable hash. Lengths are in field elements,
// matching the Poseidon backend, so the two are drop-in substitutes for
// each other behind th.TweakableHash.
func NewSHA3(parameterLen, hashLen int) *SHA3 {
	return &SHA3{parameterLen: parameterLen, hashLen: hashLen}
}

// Apply computes Truncate_h(SHA3-256(parameter || tweak || message)).
func (s *SHA3) Apply(parameter th.Params, tweak th.Tweak, message []th.Domain) th.Domain {
	h := sha3.New256()
	h.Write(th.DomainToBytes(th.Domain(parameter)))
	h.Write(tweak.Bytes())
	for _, m := range message {
		h.Write(th.DomainToBytes(m))
	}

	digest := h.Sum(nil)
	return th.BytesToDomain(digest, s.hashLen)
}

// OutputLen returns h, in field elements.
func (s *SHA3) OutputLen() int { return s.hashLen }

// ParameterLen returns P, in field elements.
func (s *SHA3) ParameterLen() int { return s.parameterLen }
