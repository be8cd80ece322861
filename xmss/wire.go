package xmss

import (
	"fmt"

	"github.com/openhashsig/koala-xmss/th"
)

// MarshalBinary encodes pk as Parameter || Root || lifetime_log2, each
// field element as 4 little-endian bytes (§6).
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, (len(pk.Parameter)+len(pk.Root))*4+1)
	out = append(out, th.DomainToBytes(th.Domain(pk.Parameter))...)
	out = append(out, th.DomainToBytes(pk.Root)...)
	out = append(out, pk.LifetimeLog2)
	return out, nil
}

// UnmarshalPublicKey decodes the wire format MarshalBinary produces,
// given the scheme's configured parameterLen and leafLen (h) field-
// element widths (not self-describing in the wire format, per §6).
func UnmarshalPublicKey(data []byte, parameterLen, leafLen int) (*PublicKey, error) {
	want := (parameterLen+leafLen)*4 + 1
	if len(data) != want {
		return nil, fmt.Errorf("xmss: public key wire length = %d, want %d", len(data), want)
	}
	pOff := parameterLen * 4
	rOff := pOff + leafLen*4
	return &PublicKey{
		Parameter:    th.Params(th.BytesToDomain(data[:pOff], parameterLen)),
		Root:         th.BytesToDomain(data[pOff:rOff], leafLen),
		LifetimeLog2: data[rOff],
	}, nil
}

// MarshalBinary encodes sig as randomness || v chain values || L
// authentication nodes, each field element as 4 little-endian bytes (§6).
func (sig *Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0)
	out = append(out, th.DomainToBytes(sig.Rho)...)
	for _, h := range sig.Hashes {
		out = append(out, th.DomainToBytes(h)...)
	}
	for _, p := range sig.Path {
		out = append(out, th.DomainToBytes(p)...)
	}
	return out, nil
}

// UnmarshalSignature decodes the wire format MarshalBinary produces,
// given the scheme's configured (RAND_LEN, v, n, L, h) widths.
func UnmarshalSignature(data []byte, randLen, v, chainLen, lifetimeLog2, leafLen int) (*Signature, error) {
	want := randLen*4 + v*chainLen*4 + lifetimeLog2*leafLen*4
	if len(data) != want {
		return nil, fmt.Errorf("xmss: signature wire length = %d, want %d", len(data), want)
	}

	off := 0
	rho := th.BytesToDomain(data[off:off+randLen*4], randLen)
	off += randLen * 4

	hashes := make([]th.Domain, v)
	for i := range hashes {
		hashes[i] = th.BytesToDomain(data[off:off+chainLen*4], chainLen)
		off += chainLen * 4
	}

	path := make([]th.Domain, lifetimeLog2)
	for i := range path {
		path[i] = th.BytesToDomain(data[off:off+leafLen*4], leafLen)
		off += leafLen * 4
	}

	return &Signature{Rho: rho, Hashes: hashes, Path: path}, nil
}

