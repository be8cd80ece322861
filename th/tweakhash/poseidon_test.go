package tweakhash

import (
	"testing"

	"github.com/openhashsig/koala-xmss/field"
	"github.com/openhashsig/koala-xmss/th"
)

func testParameter(n int) th.Params {
	p := make(th.Params, n)
	for i := range p {
		p[i] = field.FromCanonical(uint64(i + 1))
	}
	return p
}

func TestPoseidonApplyDeterministic(t *testing.T) {
	h := NewPoseidon(4, 7, 2)
	parameter := testParameter(4)
	tweak := th.ChainTweak(3, 1, 1)
	in := th.Domain{field.FromCanonical(11)}

	a := h.Apply(parameter, tweak, []th.Domain{in})
	b := h.Apply(parameter, tweak, []th.Domain{in})
	if !a.Equal(b) {
		t.Fatal("Apply is not deterministic")
	}
	if len(a) != 7 {
		t.Fatalf("output length = %d, want 7", len(a))
	}
}

func TestPoseidonApplyDistinguishesTweaks(t *testing.T) {
	h := NewPoseidon(4, 7, 2)
	parameter := testParameter(4)
	in := th.Domain{field.FromCanonical(11)}

	a := h.Apply(parameter, th.ChainTweak(3, 1, 1), []th.Domain{in})
	b := h.Apply(parameter, th.ChainTweak(3, 1, 2), []th.Domain{in})
	if a.Equal(b) {
		t.Fatal("distinct tweaks produced the same output")
	}
}

func TestPoseidonApplyDistinguishesInput(t *testing.T) {
	h := NewPoseidon(4, 7, 2)
	parameter := testParameter(4)
	tweak := th.ChainTweak(3, 1, 1)

	a := h.Apply(parameter, tweak, []th.Domain{{field.FromCanonical(11)}})
	b := h.Apply(parameter, tweak, []th.Domain{{field.FromCanonical(12)}})
	if a.Equal(b) {
		t.Fatal("distinct inputs produced the same output")
	}
}

func TestPoseidonApplyMessageTweakLongInput(t *testing.T) {
	h := NewPoseidon(4, 7, 2)
	parameter := testParameter(4)

	// Longer than one width-16 rate block (16 - (4+2) = 10 elements); a
	// message-tweak hash of it still yields exactly h output elements.
	in := make(th.Domain, 12)
	for i := range in {
		in[i] = field.FromCanonical(uint64(i))
	}
	out := h.Apply(parameter, th.MessageTweak(1), []th.Domain{in})
	if len(out) != 7 {
		t.Fatalf("output length = %d, want 7", len(out))
	}
}

func TestPoseidonApplyPanicsWhenCapacityExceedsWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when parameter+tweak exceed width")
		}
	}()
	h := NewPoseidon(20, 7, 2)
	h.Apply(testParameter(20), th.ChainTweak(1, 1, 1), nil)
}
