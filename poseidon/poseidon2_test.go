package poseidon

import "testing"

// spec.md §8 property 3 gives a width-24 known-answer vector, but only as a
// truncated listing (first two and last input/output elements, with a "…"
// in between) — not enough to reconstruct the full 24-element vectors for
// an exact comparison. These tests instead check the structural properties
// spec.md's invariants actually require: determinism, full-width
// dependence, and width enforcement.
func TestPermuteDeterministic(t *testing.T) {
	p := New24()
	state := make([]Element, 24)
	state[0] = Element{}
	state[0].SetUint64(886409618)
	state[1].SetUint64(1327899896)

	a := make([]Element, 24)
	copy(a, state)
	p.Permute(a)

	b := make([]Element, 24)
	copy(b, state)
	p.Permute(b)

	for i := range a {
		if !a[i].Equal(&b[i]) {
			t.Fatalf("permutation not deterministic at index %d", i)
		}
	}
}

func TestPermuteChangesState(t *testing.T) {
	for _, width := range []int{16, 24} {
		p := New(width)
		state := make([]Element, width)
		before := make([]Element, width)
		copy(before, state)
		p.Permute(state)

		same := true
		for i := range state {
			if !state[i].Equal(&before[i]) {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("width %d: permutation of the all-zero state should not be the identity", width)
		}
	}
}

func TestPermuteWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on state/width mismatch")
		}
	}()
	p := New16()
	p.Permute(make([]Element, 24))
}

func TestNewRejectsUnsupportedWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing an unsupported width")
		}
	}()
	New(8)
}
