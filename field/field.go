// Package field implements the KoalaBear prime field using gnark-crypto.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/field/koalabear"
)

// KoalaBear prime: 2^31 - 2^24 + 1.
const P uint64 = 2130706433

// Element represents a field element in KoalaBear. The underlying
// gnark-crypto type already stores values in Montgomery form (value*R mod p,
// R = 2^32); SetUint64/BigInt convert transparently at the boundary.
type Element = koalabear.Element

// NewElement creates a field element from a canonical (non-Montgomery)
// integer value, reducing mod p.
func NewElement(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// Zero returns the additive identity.
func Zero() Element {
	return koalabear.NewElement(0)
}

// One returns the multiplicative identity.
func One() Element {
	return koalabear.NewElement(1)
}

// FromCanonical maps an integer x in [0, p) to its field element, i.e. the
// Montgomery encoding x*R mod p.
func FromCanonical(x uint64) Element {
	return NewElement(x % P)
}

// ToCanonical inverts FromCanonical, returning the integer in [0, p)
// represented by e.
func ToCanonical(e Element) uint64 {
	return e.Uint64()
}

// FromBytes decodes a field element from its 4-byte little-endian wire
// encoding (§6), reducing mod p.
func FromBytes(b []byte) Element {
	var buf [4]byte
	copy(buf[:], b)
	v := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24
	return FromCanonical(v)
}

// ToBytes encodes a field element as 4 little-endian bytes (§6), in
// canonical form.
func ToBytes(e Element) []byte {
	v := ToCanonical(e)
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// ToBigInt converts to a big.Int in canonical form.
func ToBigInt(e Element) *big.Int {
	return e.BigInt(new(big.Int))
}

// Add returns a+b.
func Add(a, b Element) Element {
	var r Element
	r.Add(&a, &b)
	return r
}

// Sub returns a-b.
func Sub(a, b Element) Element {
	var r Element
	r.Sub(&a, &b)
	return r
}

// Mul returns a*b.
func Mul(a, b Element) Element {
	var r Element
	r.Mul(&a, &b)
	return r
}

// Square returns a*a.
func Square(a Element) Element {
	var r Element
	r.Square(&a)
	return r
}

// Inverse returns a^-1 via Fermat's little theorem (a^(p-2)). Returns
// ErrZeroInverse if a is zero.
func Inverse(a Element) (Element, error) {
	if a.IsZero() {
		return Element{}, &Error{Op: "Inverse", Err: ErrZeroInverse}
	}
	var r Element
	r.Inverse(&a)
	return r, nil
}

// Equal reports whether a and b represent the same canonical value.
func Equal(a, b Element) bool {
	return a.Equal(&b)
}
