package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if r.Chance(0) {
		t.Fatal("Chance(0) must never fire")
	}
	if !r.Chance(1) {
		t.Fatal("Chance(1) must always fire")
	}
	for i := 0; i < 100; i++ {
		if v := r.Float32n(3); v < 0 || v >= 3 {
			t.Fatalf("Float32n(3) out of range: %f", v)
		}
	}
}
