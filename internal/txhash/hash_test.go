package txhash

import "testing"

func TestGenerator_NewTxHashIsDistinctAcrossCalls(t *testing.T) {
	g := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		h := g.NewTxHash()
		if seen[h.String()] {
			t.Fatalf("duplicate hash on call %d: %s", i, h.String())
		}
		seen[h.String()] = true
	}
}

func TestGenerator_NewTxHashNeverZero(t *testing.T) {
	g := New()
	if g.NewTxHash().IsZero() {
		t.Error("NewTxHash() returned the zero hash")
	}
}
