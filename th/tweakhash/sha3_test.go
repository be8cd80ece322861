package tweakhash

import (
	"testing"

	"github.com/openhashsig/koala-xmss/field"
	"github.com/openhashsig/koala-xmss/th"
)

func TestSHA3ApplyDeterministic(t *testing.T) {
	h := NewSHA3(4, 7)
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

func TestSHA3ApplyDistinguishesTweaks(t *testing.T) {
	h := NewSHA3(4, 7)
	parameter := testParameter(4)
	in := th.Domain{field.FromCanonical(11)}

	a := h.Apply(parameter, th.ChainTweak(3, 1, 1), []th.Domain{in})
	b := h.Apply(parameter, th.ChainTweak(3, 1, 2), []th.Domain{in})
	if a.Equal(b) {
		t.Fatal("distinct tweaks produced the same output")
	}
}

func TestSHA3ApplyDistinguishesFromPoseidon(t *testing.T) {
	parameter := testParameter(4)
	tweak := th.ChainTweak(3, 1, 1)
	in := th.Domain{field.FromCanonical(11)}

	a := NewSHA3(4, 7).Apply(parameter, tweak, []th.Domain{in})
	b := NewPoseidon(4, 7, 2).Apply(parameter, tweak, []th.Domain{in})
	if a.Equal(b) {
		t.Fatal("unrelated hash backends should not collide on the same input")
	}
}
