package th

import "testing"

func TestTweakTagsDistinguishKinds(t *testing.T) {
	tr := TreeTweak(1, 2)
	ch := ChainTweak(1, 2, 3)
	msg := MessageTweak(1)

	if tr.Tag() != TagTreeHash {
		t.Fatalf("tree tweak tag = %#x, want %#x", tr.Tag(), TagTreeHash)
	}
	if ch.Tag() != TagChainHash {
		t.Fatalf("chain tweak tag = %#x, want %#x", ch.Tag(), TagChainHash)
	}
	if msg.Tag() != TagMessageHash {
		t.Fatalf("message tweak tag = %#x, want %#x", msg.Tag(), TagMessageHash)
	}
}

func TestTweakPackDeterministic(t *testing.T) {
	a := ChainTweak(7, 3, 9)
	b := ChainTweak(7, 3, 9)
	pa, pb := a.Pack(3), b.Pack(3)
	if !Domain(pa).Equal(Domain(pb)) {
		t.Fatal("Pack is not deterministic for identical tweaks")
	}
}

func TestTweakPackDistinguishesFields(t *testing.T) {
	cases := []Tweak{
		TreeTweak(1, 100),
		TreeTweak(2, 100),
		TreeTweak(1, 200),
		ChainTweak(1, 2, 3),
		ChainTweak(1, 2, 4),
		ChainTweak(1, 3, 3),
		MessageTweak(1),
		MessageTweak(2),
	}
	seen := map[string]bool{}
	for _, c := range cases {
		key := string(DomainToBytes(Domain(c.Pack(4))))
		if seen[key] {
			t.Fatalf("tweak collision for packed encoding of %+v", c)
		}
		seen[key] = true
	}
}

func TestBytesDomainRoundTrip(t *testing.T) {
	raw := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	d := BytesToDomain(raw, 3)
	back := DomainToBytes(d)
	if len(back) != 12 {
		t.Fatalf("expected 12 bytes back, got %d", len(back))
	}
	for i := range raw {
		if raw[i] != back[i] {
			t.Fatalf("byte %d mismatch: got %d, want %d", i, back[i], raw[i])
		}
	}
}

func TestBytesToDomainPadsShortInput(t *testing.T) {
	raw := []byte{9, 9}
	d := BytesToDomain(raw, 2)
	if len(d) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(d))
	}
}
