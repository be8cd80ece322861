package xmss

import (
	"github.com/openhashsig/koala-xmss/encoding/targetsum"
	"github.com/openhashsig/koala-xmss/encoding/winternitz"
	"github.com/openhashsig/koala-xmss/internal/prf"
	"github.com/openhashsig/koala-xmss/th/tweakhash"
)

// Poseidon field-element widths shared by every instantiation below: P
// (parameter), n=h (chain/leaf/digest), RAND_LEN, and the tweak packing
// width (§3, §4.C).
const (
	poseidonParameterLen = 4
	poseidonChainLen     = 8
	poseidonRandLen      = 4
	poseidonTweakLen     = 2
)

// NewPoseidon256 builds the scheme from spec.md §8's end-to-end scenario:
// lifetime 2^8, Winternitz w=256 (chunkSize=8), 20 message chunks, 2
// checksum chunks.
func NewPoseidon256() (*Scheme, error) {
	const (
		lifetimeLog2 = 8
		chunkSize    = 8
		numMsg       = 20
		numChk       = 2
	)

	hash := tweakhash.NewPoseidon(poseidonParameterLen, poseidonChainLen, poseidonTweakLen)
	prfSource := prf.New(poseidonChainLen, poseidonRandLen)
	enc := winternitz.New(chunkSize, numMsg, numChk)

	return New(Config{
		LifetimeLog2: lifetimeLog2,
		ParameterLen: poseidonParameterLen,
		ChainLen:     poseidonChainLen,
		RandLen:      poseidonRandLen,
		Hash:         hash,
		PRF:          prfSource,
		Encoding:     enc,
	})
}

// NewPoseidonWinternitzW4 builds a smaller-chunk variant: w=16
// (chunkSize=4), trading a longer codeword for shorter hash chains.
func NewPoseidonWinternitzW4(lifetimeLog2 uint8) (*Scheme, error) {
	const (
		chunkSize = 4
		numMsg    = 39
		numChk    = 3
	)

	hash := tweakhash.NewPoseidon(poseidonParameterLen, poseidonChainLen, poseidonTweakLen)
	prfSource := prf.New(poseidonChainLen, poseidonRandLen)
	enc := winternitz.New(chunkSize, numMsg, numChk)

	return New(Config{
		LifetimeLog2: lifetimeLog2,
		ParameterLen: poseidonParameterLen,
		ChainLen:     poseidonChainLen,
		RandLen:      poseidonRandLen,
		Hash:         hash,
		PRF:          prfSource,
		Encoding:     enc,
	})
}

// NewPoseidonTargetSum256 builds a Target-Sum variant at w=256, the
// supplemented alternative encoding (§4.E is silent on Target-Sum, but
// the teacher ships it as a second Construction 6 instantiation).
func NewPoseidonTargetSum256(lifetimeLog2 uint8) (*Scheme, error) {
	const (
		chunkSize = 8
		dimension = 32
		target    = 4080 // delta = 1.0: the midpoint of [0, 32*255]
	)

	hash := tweakhash.NewPoseidon(poseidonParameterLen, poseidonChainLen, poseidonTweakLen)
	prfSource := prf.New(poseidonChainLen, poseidonRandLen)
	enc := targetsum.New(chunkSize, dimension, target)

	return New(Config{
		LifetimeLog2: lifetimeLog2,
		ParameterLen: poseidonParameterLen,
		ChainLen:     poseidonChainLen,
		RandLen:      poseidonRandLen,
		Hash:         hash,
		PRF:          prfSource,
		Encoding:     enc,
	})
}

// NewSHA3_256 mirrors NewPoseidon256 but over the alternate, non-algebraic
// SHA3 tweakable-hash and PRF backends.
func NewSHA3_256() (*Scheme, error) {
	const (
		lifetimeLog2 = 8
		chunkSize    = 8
		numMsg       = 20
		numChk       = 2
	)

	hash := tweakhash.NewSHA3(poseidonParameterLen, poseidonChainLen)
	prfSource := prf.NewSHA3(poseidonChainLen, poseidonRandLen)
	enc := winternitz.New(chunkSize, numMsg, numChk)

	return New(Config{
		LifetimeLog2: lifetimeLog2,
		ParameterLen: poseidonParameterLen,
		ChainLen:     poseidonChainLen,
		RandLen:      poseidonRandLen,
		Hash:         hash,
		PRF:          prfSource,
		Encoding:     enc,
	})
}
