package ontgen

import (
	"testing"
)

func Test_sampleLength(t *testing.T) {
	rng := NewRand(1)

	for i := 0; i < 50000; i++ {
		l := sampleLength(rng)
		if l < minLength || l > maxLength {
			t.Fatalf("sampleLength() = %d, want within [%d, %d]", l, minLength, maxLength)
		}
	}
}

func Test_sampleLength_deterministic(t *testing.T) {
	rng1 := NewRand(42)
	rng2 := NewRand(42)

	for i := 0; i < 1000; i++ {
		l1, l2 := sampleLength(rng1), sampleLength(rng2)
		if l1 != l2 {
			t.Fatalf("draw %d: sampleLength() = %d and %d for the same seed", i, l1, l2)
		}
	}
}

// the sampled distribution should have its bulk near the 5kb median
func Test_sampleLength_median(t *testing.T) {
	rng := NewRand(7)

	below := 0
	n := 20000
	for i := 0; i < n; i++ {
		if sampleLength(rng) < medianLength {
			below++
		}
	}

	frac := float64(below) / float64(n)
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("fraction of lengths below the median = %.3f, want near 0.5", frac)
	}
}
