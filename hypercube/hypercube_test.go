package hypercube

import (
	"math/big"
	"testing"
)

// TestLayerSizesSumToTotalVertexCount checks that summing every layer's
// size recovers w^v, the total vertex count of {0,...,w-1}^v.
func TestLayerSizesSumToTotalVertexCount(t *testing.T) {
	w, v := 3, 4
	info := NewLayerInfo(w, v)
	maxLayer := v * (w - 1)

	total := info.SizesSumInRange(0, maxLayer)
	want := new(big.Int).Exp(big.NewInt(int64(w)), big.NewInt(int64(v)), nil)
	if total.Cmp(want) != 0 {
		t.Fatalf("total vertices = %s, want %s", total, want)
	}
}

// TestFindLayerAtBoundaries checks FindLayer picks out the first and
// last index of every layer correctly.
func TestFindLayerAtBoundaries(t *testing.T) {
	w, v := 3, 3
	info := NewLayerInfo(w, v)
	maxLayer := v * (w - 1)

	cursor := big.NewInt(0)
	for layer := 0; layer <= maxLayer; layer++ {
		size := info.SizesSumInRange(layer, layer)
		if size.Sign() == 0 {
			continue
		}

		layerStart := new(big.Int).Set(cursor)
		gotLayer, offset := FindLayer(info, layerStart)
		if gotLayer != layer || offset.Sign() != 0 {
			t.Fatalf("FindLayer at start of layer %d: got (layer=%d, offset=%s)", layer, gotLayer, offset)
		}

		layerEnd := new(big.Int).Add(cursor, new(big.Int).Sub(size, big.NewInt(1)))
		gotLayer, offset = FindLayer(info, layerEnd)
		wantOffset := new(big.Int).Sub(size, big.NewInt(1))
		if gotLayer != layer || offset.Cmp(wantOffset) != 0 {
			t.Fatalf("FindLayer at end of layer %d: got (layer=%d, offset=%s), want offset %s", layer, gotLayer, offset, wantOffset)
		}

		cursor.Add(cursor, size)
	}
}

// TestUnrankProducesDistinctVertices checks that every rank in
// [0, count) unranks to a vertex of the right dimension, with every
// coordinate in range and summing to the target, and that distinct
// ranks never collide on the same vertex.
func TestUnrankProducesDistinctVertices(t *testing.T) {
	w, v, sum := 4, 3, 5
	count := countVerticesWithSum(w, v, sum)

	seen := make(map[string]bool)
	limit := count.Int64()
	for rank := int64(0); rank < limit; rank++ {
		vertex := Unrank(w, v, sum, big.NewInt(rank))
		if len(vertex) != v {
			t.Fatalf("rank %d: vertex length = %d, want %d", rank, len(vertex), v)
		}

		total := 0
		for _, c := range vertex {
			if int(c) >= w {
				t.Fatalf("rank %d: coordinate %d out of range [0, %d)", rank, c, w)
			}
			total += int(c)
		}
		if total != sum {
			t.Fatalf("rank %d: vertex sum = %d, want %d", rank, total, sum)
		}

		key := string(vertex)
		if seen[key] {
			t.Fatalf("rank %d produced a vertex already seen from a different rank", rank)
		}
		seen[key] = true
	}

	if int64(len(seen)) != limit {
		t.Fatalf("got %d distinct vertices, want %d", len(seen), limit)
	}
}

// TestUnrankSingleZeroVertex exercises the v=0-adjacent edge (the last
// coordinate of a vertex), where Unrank must special-case rather than
// call countVerticesWithSum(w, 0, ...) directly.
func TestUnrankSingleZeroVertex(t *testing.T) {
	vertex := Unrank(3, 1, 0, big.NewInt(0))
	if len(vertex) != 1 || vertex[0] != 0 {
		t.Fatalf("Unrank(3, 1, 0, 0) = %v, want [0]", vertex)
	}

	vertex = Unrank(3, 1, 2, big.NewInt(0))
	if len(vertex) != 1 || vertex[0] != 2 {
		t.Fatalf("Unrank(3, 1, 2, 0) = %v, want [2]", vertex)
	}
}

// TestComputeIndexBoundsMatchesSizesSumInRange cross-checks
// ComputeIndexBounds against the same LayerInfo it wraps.
func TestComputeIndexBoundsMatchesSizesSumInRange(t *testing.T) {
	w, v := 4, 5
	info := GetLayerInfo(w, v)

	minLayer, maxLayer := 2, 6
	lower, upper := ComputeIndexBounds(w, v, 0, minLayer, maxLayer)

	wantLower := info.SizesSumInRange(0, minLayer-1)
	wantUpper := info.SizesSumInRange(0, maxLayer)
	if lower.Cmp(wantLower) != 0 {
		t.Fatalf("lower bound = %s, want %s", lower, wantLower)
	}
	if upper.Cmp(wantUpper) != 0 {
		t.Fatalf("upper bound = %s, want %s", upper, wantUpper)
	}
}

// TestCountVerticesTargetSumMatchesLayerInfo cross-checks the
// positions-based DP count against the inclusion-exclusion count that
// LayerInfo itself uses, for a vector using all v coordinates.
func TestCountVerticesTargetSumMatchesLayerInfo(t *testing.T) {
	w, v, s := 3, 4, 5

	got := CountVerticesTargetSum(w, v, s, v, v)
	want := countVerticesWithSum(w, v, s)
	if got.Cmp(want) != 0 {
		t.Fatalf("CountVerticesTargetSum = %s, want %s", got, want)
	}
}
