package xmss

import "testing"

func TestSecretKeyJSONRoundTrip(t *testing.T) {
	scheme, err := NewPoseidon256()
	if err != nil {
		t.Fatalf("NewPoseidon256: %v", err)
	}
	_, sk := scheme.KeyGen(testSeed(0x21))

	data, err := sk.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	restored, err := UnmarshalSecretKey(data, scheme.cfg.Hash, scheme.cfg.ParameterLen, scheme.cfg.ChainLen)
	if err != nil {
		t.Fatalf("UnmarshalSecretKey: %v", err)
	}

	if restored.nextEpoch != sk.nextEpoch {
		t.Fatalf("nextEpoch mismatch: got %d, want %d", restored.nextEpoch, sk.nextEpoch)
	}
	if !restored.tree.Root().Equal(sk.tree.Root()) {
		t.Fatal("restored tree root does not match original")
	}

	sig, err := scheme.Sign(restored, []byte("after restore"), 0)
	if err != nil {
		t.Fatalf("Sign with restored key: %v", err)
	}
	pk := &PublicKey{Parameter: restored.parameter, Root: restored.tree.Root(), LifetimeLog2: scheme.cfg.LifetimeLog2}
	if !scheme.Verify(pk, []byte("after restore"), 0, sig) {
		t.Fatal("signature from restored secret key failed to verify")
	}
}

func TestSecretKeyJSONPreservesNextEpoch(t *testing.T) {
	scheme, err := NewPoseidon256()
	if err != nil {
		t.Fatalf("NewPoseidon256: %v", err)
	}
	_, sk := scheme.KeyGen(testSeed(0x22))

	if _, err := scheme.Sign(sk, []byte("msg"), 5); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	data, err := sk.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	restored, err := UnmarshalSecretKey(data, scheme.cfg.Hash, scheme.cfg.ParameterLen, scheme.cfg.ChainLen)
	if err != nil {
		t.Fatalf("UnmarshalSecretKey: %v", err)
	}

	if _, err := scheme.Sign(restored, []byte("replay"), 5); err == nil {
		t.Fatal("expected epoch 5 to remain rejected after restore")
	}
	if _, err := scheme.Sign(restored, []byte("next"), 6); err != nil {
		t.Fatalf("expected epoch 6 to remain usable after restore: %v", err)
	}
}
