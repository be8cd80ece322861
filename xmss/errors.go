package xmss

import "errors"

// ErrEpochOutOfRange is returned when the requested epoch is >= 2^L or
// behind the secret key's internal monotonic counter (§7).
var ErrEpochOutOfRange = errors.New("xmss: epoch out of range")

// ErrRandomnessExhausted is returned when a rejection-sampling encoding
// (Target-Sum) didn't land on its acceptance condition within the
// configured attempt budget (§7).
var ErrRandomnessExhausted = errors.New("xmss: randomness exhausted before encoding succeeded")

// ErrLifetimeTooLarge is a ConfigError: lifetime_log2 must fit in the
// epoch/position packing the tweak scheme relies on (§4.C doc comment in
// th/tweak.go: epoch/position fields are 4 bytes each).
var ErrLifetimeTooLarge = errors.New("xmss: lifetime_log2 must be <= 32")

// ErrEncodingTooWide is a ConfigError: base and dimension must fit the
// one-byte chain_index/step packing in ChainTweak.
var ErrEncodingTooWide = errors.New("xmss: encoding base and dimension must each be <= 256")

// New also surfaces encoding.ErrChecksumTooSmall as a ConfigError, via
// cfg.Encoding.Validate() — e.g. a Winternitz encoding whose numChk is
// too small to represent its maximum possible checksum (spec.md §6, §7).

// SignError wraps a failure from Sign, naming which kind occurred.
type SignError struct {
	Err error
}

func (e *SignError) Error() string { return "xmss: sign: " + e.Err.Error() }
func (e *SignError) Unwrap() error { return e.Err }

// ConfigError wraps an invalid configuration detected at construction.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "xmss: config: " + e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }
