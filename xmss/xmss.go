// Package xmss composes the field, Poseidon2, tweakable hash, PRF,
// encoding, and Merkle layers into the generalized XMSS signature scheme
// (spec.md §4.H, Construction 3): a stateful, many-time signature built
// from a tree of one-time Winternitz signatures.
package xmss

import (
	"fmt"

	"github.com/openhashsig/koala-xmss/encoding"
	"github.com/openhashsig/koala-xmss/internal/prf"
	"github.com/openhashsig/koala-xmss/internal/seedexpander"
	"github.com/openhashsig/koala-xmss/merkle"
	"github.com/openhashsig/koala-xmss/th"
)

// maxEncodingAttempts bounds a rejection-sampling encoding's retries
// before Sign gives up with ErrRandomnessExhausted.
const maxEncodingAttempts = 100000

// Config names every configuration knob from §6's table, plus the
// concrete hash/PRF/encoding instances it's built from.
type Config struct {
	LifetimeLog2 uint8 // L

	ParameterLen int // P, in field elements
	ChainLen     int // n = h: chain/leaf/message-digest output width, since
	// Chain/Tree/Message all run through the same Hash instance and its
	// OutputLen is therefore a single fixed width shared by all three.
	RandLen int // RAND_LEN

	Hash     th.TweakableHash
	PRF      prf.Source
	Encoding encoding.IncomparableEncoding
}

// Scheme is a fully configured generalized-XMSS instantiation. It is
// stateless and safe for concurrent KeyGen/Verify calls; SecretKey holds
// the only mutable per-signer state.
type Scheme struct {
	cfg Config
}

// New validates cfg and builds a Scheme. Returns *ConfigError for an
// invalid combination (§7).
func New(cfg Config) (*Scheme, error) {
	if cfg.LifetimeLog2 > 32 {
		return nil, &ConfigError{Err: ErrLifetimeTooLarge}
	}
	if cfg.Encoding.Base() > 256 || cfg.Encoding.Dimension() > 256 {
		return nil, &ConfigError{Err: ErrEncodingTooWide}
	}
	if err := cfg.Encoding.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return &Scheme{cfg: cfg}, nil
}

// Lifetime returns 2^L, the number of usable epochs.
func (s *Scheme) Lifetime() uint64 { return 1 << s.cfg.LifetimeLog2 }

// ParameterLen returns P, the public parameter's width in field elements.
func (s *Scheme) ParameterLen() int { return s.cfg.ParameterLen }

// ChainLen returns n = h, the shared chain/leaf/digest width in field
// elements.
func (s *Scheme) ChainLen() int { return s.cfg.ChainLen }

// RandLen returns RAND_LEN, the signature randomness width in field
// elements.
func (s *Scheme) RandLen() int { return s.cfg.RandLen }

// Dimension returns v, the number of Winternitz chains.
func (s *Scheme) Dimension() int { return s.cfg.Encoding.Dimension() }

// PublicKey is (Parameter, Root, lifetime_log2) — §6 serialization order.
type PublicKey struct {
	Parameter    th.Params
	Root         th.Domain
	LifetimeLog2 uint8
}

// SecretKey holds the seed-derived PRF key, the precomputed Merkle tree,
// and the monotonic epoch counter that makes double-signing impossible
// through the public API (§4.H state machine).
type SecretKey struct {
	prfKey    [prf.KeyLen]byte
	parameter th.Params
	tree      *merkle.Tree
	nextEpoch uint64
}

// Signature is (randomness, v chain values, L authentication nodes) —
// §6 serialization order.
type Signature struct {
	Rho    th.Domain
	Hashes []th.Domain
	Path   []th.Domain
}

// chainStart derives PRF.GetDomainElement(prfKey, epoch, chainIndex),
// the deterministic starting vector of Winternitz chain chainIndex for
// epoch (§4.F).
func (s *Scheme) chainStart(prfKey [prf.KeyLen]byte, epoch uint64, chainIndex int) th.Domain {
	return s.cfg.PRF.GetDomainElement(prfKey, uint32(epoch), uint64(chainIndex))
}

// leafChainEnds walks every chain to its public end (w-1 steps) for the
// given epoch, producing the raw vector leaf-compression consumes.
func (s *Scheme) leafChainEnds(prfKey [prf.KeyLen]byte, parameter th.Params, epoch uint64) []th.Domain {
	v := s.cfg.Encoding.Dimension()
	w := s.cfg.Encoding.Base()
	ends := make([]th.Domain, v)
	for i := 0; i < v; i++ {
		start := s.chainStart(prfKey, epoch, i)
		ends[i] = th.Chain(s.cfg.Hash, parameter, epoch, uint32(i), 0, w-1, start)
	}
	return ends
}

// KeyGen expands seed into (PRFKey, Parameter), computes every leaf over
// [0, 2^L), builds the Merkle tree, and returns (PublicKey, SecretKey)
// (§4.H). Deterministic: the same seed always yields identical keys.
func (s *Scheme) KeyGen(seed [32]byte) (*PublicKey, *SecretKey) {
	prfKey, parameter := seedexpander.Expand(seed, s.cfg.ParameterLen)

	n := int(s.Lifetime())
	leaves := make([]th.Domain, n)
	for e := 0; e < n; e++ {
		ends := s.leafChainEnds(prfKey, parameter, uint64(e))
		leaves[e] = s.cfg.Hash.Apply(parameter, th.TreeTweak(0, uint64(e)), ends)
	}

	tree := merkle.Build(s.cfg.Hash, parameter, leaves)

	pk := &PublicKey{Parameter: parameter, Root: tree.Root(), LifetimeLog2: s.cfg.LifetimeLog2}
	sk := &SecretKey{prfKey: prfKey, parameter: parameter, tree: tree, nextEpoch: 0}
	return pk, sk
}

// digest computes TweakableHash.hash(Parameter, MessageTweak(epoch),
// randomness||message_as_field_elements) and serializes it to bytes for
// the encoding layer (§4.H).
func (s *Scheme) digest(parameter th.Params, epoch uint64, message []byte, rho th.Domain) []byte {
	messageElements := th.BytesToDomain(message, (len(message)+3)/4)
	out := s.cfg.Hash.Apply(parameter, th.MessageTweak(epoch), []th.Domain{rho, messageElements})
	return th.DomainToBytes(out)
}

// Sign produces a signature for message at epoch, requiring
// sk.nextEpoch <= epoch < Lifetime() (§4.H, §7). On success sk's counter
// advances to epoch+1, so epoch can never be reused.
func (s *Scheme) Sign(sk *SecretKey, message []byte, epoch uint64) (*Signature, error) {
	if epoch >= s.Lifetime() || epoch < sk.nextEpoch {
		return nil, &SignError{Err: ErrEpochOutOfRange}
	}

	var codeword encoding.Codeword
	var rho th.Domain
	var counter uint64
	ok := false
	for attempt := 0; attempt < maxEncodingAttempts; attempt++ {
		rho = s.cfg.PRF.GetRandomness(sk.prfKey, uint32(epoch), message, counter)
		digest := s.digest(sk.parameter, epoch, message, rho)

		var err error
		codeword, err = s.cfg.Encoding.Encode(digest)
		if err == nil {
			ok = true
			break
		}
		if !s.cfg.Encoding.NeedsRetry() {
			return nil, &SignError{Err: fmt.Errorf("encoding: %w", err)}
		}
		counter++
	}
	if !ok {
		return nil, &SignError{Err: ErrRandomnessExhausted}
	}

	v := s.cfg.Encoding.Dimension()
	hashes := make([]th.Domain, v)
	for i := 0; i < v; i++ {
		start := s.chainStart(sk.prfKey, epoch, i)
		steps := int(codeword[i])
		hashes[i] = th.Chain(s.cfg.Hash, sk.parameter, epoch, uint32(i), 0, steps, start)
	}

	path := sk.tree.Path(epoch)
	sk.nextEpoch = epoch + 1

	return &Signature{Rho: rho, Hashes: hashes, Path: path}, nil
}

// Verify recomputes the digest, re-encodes, walks each chain its
// remaining steps, compresses to a candidate leaf, climbs the
// authentication path, and compares against pk.Root. Never errors;
// a malformed signature simply fails to verify (§4.H, §7).
func (s *Scheme) Verify(pk *PublicKey, message []byte, epoch uint64, sig *Signature) bool {
	if epoch >= s.Lifetime() {
		return false
	}

	digest := s.digest(pk.Parameter, epoch, message, sig.Rho)
	codeword, err := s.cfg.Encoding.Encode(digest)
	if err != nil {
		return false
	}

	v := s.cfg.Encoding.Dimension()
	w := s.cfg.Encoding.Base()
	if len(codeword) != v || len(sig.Hashes) != v || len(sig.Path) != int(s.cfg.LifetimeLog2) {
		return false
	}

	chainEnds := make([]th.Domain, v)
	for i := 0; i < v; i++ {
		xi := int(codeword[i])
		steps := w - 1 - xi
		chainEnds[i] = th.Chain(s.cfg.Hash, pk.Parameter, epoch, uint32(i), uint32(xi), steps, sig.Hashes[i])
	}

	return merkle.VerifyPath(s.cfg.Hash, pk.Parameter, pk.Root, epoch, chainEnds, sig.Path)
}
