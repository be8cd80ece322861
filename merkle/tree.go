// Package merkle implements the balanced binary hash tree over a scheme's
// 2^L one-time-signature leaves (spec.md §4.G).
package merkle

import (
	"sync"

	"github.com/openhashsig/koala-xmss/th"
)

// parallelThreshold is the minimum number of sibling pairs in a layer
// before hashing fans out across goroutines; small layers aren't worth
// the scheduling overhead.
const parallelThreshold = 100

// Tree is a complete binary tree over exactly 2^depth leaves. Unlike a
// partial-activation-window tree, every leaf is always present — spec.md's
// KeyGen computes all 2^L leaves up front, so there is never a sparse or
// padded range to account for.
type Tree struct {
	depth  int
	layers [][]th.Domain // layers[0] = leaves, layers[depth] = [root]
	hash   th.TweakableHash
	params th.Params
}

// Build constructs the tree from exactly 2^depth already-compressed leaf
// node values (spec.md §4.H computes each leaf as
// hash.Apply(parameter, TreeTweak(0, epoch), chainEndpoints) before
// calling Build). Internal node at (level, index) =
// hash.Apply(parameter, TreeTweak(level, index), left||right) (§4.G).
func Build(hash th.TweakableHash, parameter th.Params, leaves []th.Domain) *Tree {
	depth := 0
	for 1<<depth < len(leaves) {
		depth++
	}
	if 1<<depth != len(leaves) {
		panic("merkle: leaf count must be exactly a power of two")
	}

	layers := make([][]th.Domain, depth+1)
	layers[0] = leaves

	for level := 0; level < depth; level++ {
		prev := layers[level]
		numParents := len(prev) / 2
		parents := make([]th.Domain, numParents)

		hashPair := func(i int) {
			tweak := th.TreeTweak(uint8(level+1), uint64(i))
			parents[i] = hash.Apply(parameter, tweak, []th.Domain{prev[2*i], prev[2*i+1]})
		}

		if numParents > parallelThreshold {
			var wg sync.WaitGroup
			wg.Add(numParents)
			for i := 0; i < numParents; i++ {
				go func(i int) {
					defer wg.Done()
					hashPair(i)
				}(i)
			}
			wg.Wait()
		} else {
			for i := 0; i < numParents; i++ {
				hashPair(i)
			}
		}

		layers[level+1] = parents
	}

	return &Tree{depth: depth, layers: layers, hash: hash, params: parameter}
}

// FromLayers reconstructs a Tree from its already-computed layers (used to
// restore a SecretKey from its serialized form without recomputing every
// leaf). Callers are responsible for layers matching hash/parameter.
func FromLayers(hash th.TweakableHash, parameter th.Params, depth int, layers [][]th.Domain) *Tree {
	return &Tree{depth: depth, layers: layers, hash: hash, params: parameter}
}

// Depth returns L, the tree's depth (lifetime_log2).
func (t *Tree) Depth() int { return t.depth }

// Layers exposes the tree's internal level-by-level node slices, leaves
// first, root last, for serialization.
func (t *Tree) Layers() [][]th.Domain { return t.layers }

// Root returns the tree's root node.
func (t *Tree) Root() th.Domain {
	return t.layers[t.depth][0]
}

// Path returns the authentication path for leaf index epoch: the L
// sibling nodes bottom-up (§4.G).
func (t *Tree) Path(epoch uint64) []th.Domain {
	path := make([]th.Domain, t.depth)
	index := epoch
	for level := 0; level < t.depth; level++ {
		sibling := index ^ 1
		path[level] = t.layers[level][sibling]
		index >>= 1
	}
	return path
}

// VerifyPath recomputes the root from a raw (uncompressed) leaf input —
// compressed first via hash.Apply(parameter, TreeTweak(0, epoch), leaf) —
// folded with path using the parity bits of epoch to pick left/right
// positioning at each level, and compares against root (§4.G).
func VerifyPath(hash th.TweakableHash, parameter th.Params, root th.Domain, epoch uint64, leaf []th.Domain, path []th.Domain) bool {
	current := hash.Apply(parameter, th.TreeTweak(0, epoch), leaf)

	index := epoch
	for level := 0; level < len(path); level++ {
		var children []th.Domain
		if index&1 == 0 {
			children = []th.Domain{current, path[level]}
		} else {
			children = []th.Domain{path[level], current}
		}
		parentIndex := index >> 1
		tweak := th.TreeTweak(uint8(level+1), parentIndex)
		current = hash.Apply(parameter, tweak, children)
		index = parentIndex
	}

	return current.Equal(root)
}
