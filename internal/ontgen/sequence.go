package ontgen

import (
	"math/rand"
)

// ONT adapter sequences (real ones from Oxford Nanopore)
const (
	// StartAdapter is occasionally retained at the 5' end of raw reads
	StartAdapter = "AATGTACTTCGTTCAGTTACGTATTGCT"

	// EndAdapter is occasionally retained at the 3' end of raw reads
	EndAdapter = "GCAATACGTAACTGAACGAAGT"
)

const (
	// nRate is the per-base probability of an ambiguous N call
	nRate = 0.005

	// minCore is the floor on core sequence length after adapter
	// lengths are subtracted from the sampled read length
	minCore = 100
)

var bases = []byte("ACGT")

// placement says which adapters flank a read's core sequence
type placement int

const (
	noAdapter placement = iota
	startOnly
	endOnly
	bothAdapters
)

// samplePlacement maps one uniform draw through fixed cumulative bands:
// 10% both adapters, 30% start only, 30% end only, 30% none. The band
// order is part of the reproducible draw sequence
func samplePlacement(rng *rand.Rand) placement {
	r := rng.Float64()
	switch {
	case r < 0.10:
		return bothAdapters
	case r < 0.40:
		return startOnly
	case r < 0.70:
		return endOnly
	}
	return noAdapter
}

// randomCore generates a random DNA sequence with occasional N bases
func randomCore(rng *rand.Rand, length int) []byte {
	seq := make([]byte, length)
	for i := range seq {
		if rng.Float64() < nRate {
			seq[i] = 'N'
		} else {
			seq[i] = bases[rng.Intn(len(bases))]
		}
	}
	return seq
}

// synthesizeSeq builds a read's full sequence for the sampled length and
// adapter placement. Adapters add to the core rather than replacing it,
// so the realized length can differ from the sampled length; callers
// must use len() of the result downstream
func synthesizeSeq(rng *rand.Rand, length int, p placement) []byte {
	switch p {
	case bothAdapters:
		core := max(minCore, length-len(StartAdapter)-len(EndAdapter))
		seq := make([]byte, 0, len(StartAdapter)+core+len(EndAdapter))
		seq = append(seq, StartAdapter...)
		seq = append(seq, randomCore(rng, core)...)
		return append(seq, EndAdapter...)
	case startOnly:
		core := max(minCore, length-len(StartAdapter))
		seq := make([]byte, 0, len(StartAdapter)+core)
		seq = append(seq, StartAdapter...)
		return append(seq, randomCore(rng, core)...)
	case endOnly:
		core := max(minCore, length-len(EndAdapter))
		seq := randomCore(rng, core)
		return append(seq, EndAdapter...)
	}
	return randomCore(rng, length)
}
