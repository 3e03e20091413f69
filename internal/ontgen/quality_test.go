package ontgen

import (
	"testing"
)

func Test_synthesizeQual(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"single base", 1},
		{"typical read", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qual := synthesizeQual(NewRand(9), tt.length)

			if len(qual) != tt.length {
				t.Fatalf("synthesizeQual() length = %d, want %d", len(qual), tt.length)
			}
			for i, c := range qual {
				q := int(c) - phredOffset
				if q < 0 || q > maxQual {
					t.Fatalf("quality at %d decodes to %d, want within [0, %d]", i, q, maxQual)
				}
			}
		})
	}
}

// the per-read baseline shifts whole reads up or down together, so two
// reads from distant baselines should have clearly different means
func Test_synthesizeQual_baseline(t *testing.T) {
	rng := NewRand(13)

	mean := func(qual []byte) float64 {
		sum := 0
		for _, c := range qual {
			sum += int(c) - phredOffset
		}
		return float64(sum) / float64(len(qual))
	}

	// enough reads that at least two baselines land >4 apart
	var means []float64
	for i := 0; i < 20; i++ {
		means = append(means, mean(synthesizeQual(rng, 2000)))
	}

	lo, hi := means[0], means[0]
	for _, m := range means {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	if hi-lo < 2 {
		t.Errorf("per-read mean qualities span %.2f, want baseline-driven spread > 2", hi-lo)
	}
}
