// Package hypercube implements a deterministic incomparable encoding
// grounded on the teacher's hypercube-layer machinery (originally wired
// up for its TopLevelPoseidonMessageHash, whose target entry points into
// the hypercube package don't exist in the teacher's own hypercube.go —
// this package supplies the missing layer-lookup and unranking step and
// puts the existing LayerInfo/ComputeIndexBounds machinery to real use).
//
// A digest is reduced to an index over the vertices of {0,...,w-1}^v
// whose coordinate sum falls in one of the top (finalLayer+1) layers
// (closest to the maximum sum (w-1)*v), then unranked into a concrete
// chunk vector. Unlike encoding/targetsum, this never rejects: every
// digest maps to some vertex in the configured layer range, so
// NeedsRetry is always false.
package hypercube

import (
	"fmt"
	"math/big"

	"github.com/openhashsig/koala-xmss/encoding"
	corehypercube "github.com/openhashsig/koala-xmss/hypercube"
)

// TopLayers is the hypercube top-layer encoding.
type TopLayers struct {
	chunkSize  int
	dimension  int
	finalLayer int
}

// New creates a TopLayers encoding. finalLayer must be in
// [0, dimension*(base-1)]; it fixes how many of the hypercube's layers
// (by distance from the maximum coordinate sum) are eligible targets —
// a larger finalLayer admits a larger, more uniform domain.
func New(chunkSize, dimension, finalLayer int) *TopLayers {
	base := 1 << chunkSize
	maxLayer := dimension * (base - 1)
	if finalLayer < 0 || finalLayer > maxLayer {
		panic(fmt.Sprintf("hypercube: finalLayer %d out of range [0, %d]", finalLayer, maxLayer))
	}
	return &TopLayers{chunkSize: chunkSize, dimension: dimension, finalLayer: finalLayer}
}

// Encode reduces digest to a big-endian integer, folds it into the
// top-layer domain, locates the containing layer, and unranks the
// result into a chunk vector.
func (e *TopLayers) Encode(digest []byte) (encoding.Codeword, error) {
	if len(digest) == 0 {
		return nil, encoding.ErrInsufficientDigest
	}
	base := e.Base()

	_, domSize := corehypercube.ComputeIndexBounds(base, e.dimension, 0, 0, e.finalLayer)
	if domSize.Sign() == 0 {
		return nil, fmt.Errorf("%w: empty hypercube domain for finalLayer %d", encoding.ErrEncodingFailed, e.finalLayer)
	}

	acc := new(big.Int).SetBytes(digest)
	acc.Mod(acc, domSize)

	info := corehypercube.GetLayerInfo(base, e.dimension)
	layer, offset := corehypercube.FindLayer(info, acc)
	sum := e.dimension*(base-1) - layer

	vertex := corehypercube.Unrank(base, e.dimension, sum, offset)
	return encoding.Codeword(vertex), nil
}

// Dimension returns v.
func (e *TopLayers) Dimension() int { return e.dimension }

// Base returns w = 2^chunkSize.
func (e *TopLayers) Base() int { return 1 << e.chunkSize }

// ChunkSize returns log2(w).
func (e *TopLayers) ChunkSize() int { return e.chunkSize }

// NeedsRetry is always false: every digest maps to a vertex.
func (e *TopLayers) NeedsRetry() bool { return false }

// Validate always returns nil: New already bounds finalLayer at
// construction, and this encoding has no checksum component to
// truncate.
func (e *TopLayers) Validate() error { return nil }
