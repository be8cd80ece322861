package seedexpander

import (
	"github.com/openhashsig/koala-xmss/field"
	"github.com/openhashsig/koala-xmss/th"
)

// PRFKeyLen is the length, in bytes, of the derived PRF key (§3).
const PRFKeyLen = 32

// Expand derives a PRFKey and a public Parameter vector of parameterLen
// field elements from a 32-byte secret seed (§4.D): the first PRFKeyLen
// keystream bytes become the PRF key, and subsequent 4-byte little-endian
// chunks each reduce modulo p to produce one Parameter element.
func Expand(seed [32]byte, parameterLen int) (prfKey [PRFKeyLen]byte, parameter th.Params) {
	s := New(seed)
	copy(prfKey[:], s.Expand(PRFKeyLen))

	parameter = make(th.Params, parameterLen)
	for i := range parameter {
		parameter[i] = field.FromBytes(s.Expand(4))
	}
	return prfKey, parameter
}
