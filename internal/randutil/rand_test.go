package randutil

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Int64(), b.Int64(); x != y {
			t.Fatalf("sequences diverge at %d: %d != %d", i, x, y)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Int64() == b.Int64() {
			same++
		}
	}
	if same > 2 {
		t.Errorf("%d/100 identical draws across seeds", same)
	}
}
