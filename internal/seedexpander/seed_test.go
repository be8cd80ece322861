package seedexpander

import (
	"testing"

	"github.com/openhashsig/koala-xmss/th"
)

func TestExpandProducesDistinctKeyAndParameter(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = 0x11
	}
	prfKey, parameter := Expand(seed, 7)
	if len(parameter) != 7 {
		t.Fatalf("parameter length = %d, want 7", len(parameter))
	}

	zero := [32]byte{}
	if prfKey == zero {
		t.Fatal("PRF key should not be all-zero for a non-zero seed")
	}
}

func TestExpandDeterministicAcrossCalls(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = 0x99
	}
	k1, p1 := Expand(seed, 5)
	k2, p2 := Expand(seed, 5)
	if k1 != k2 {
		t.Fatal("PRF key not deterministic")
	}
	if !th.Domain(p1).Equal(th.Domain(p2)) {
		t.Fatal("parameter not deterministic")
	}
}
