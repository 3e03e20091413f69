package ontgen

import (
	"math/rand"
)

const (
	// per-read baseline quality distribution, mean Q12
	baselineMean = 12.0
	baselineSD   = 3.0

	// degradedRate is the per-base probability of a low-quality region
	// draw (simulating systematic errors)
	degradedRate = 0.02
	degradedMean = 5.0
	degradedSD   = 2.0

	// perBaseSD spreads each base's quality around the read baseline
	perBaseSD = 4.0

	// maxQual caps encoded quality scores
	maxQual = 40

	// phredOffset is the phred+33 encoding offset
	phredOffset = 33
)

// synthesizeQual generates an ONT-like quality string (phred+33), one
// encoded character per base. A per-read baseline is drawn first and
// left unclamped; it only centers the per-base draws, each of which is
// clamped to [0, maxQual] before encoding
func synthesizeQual(rng *rand.Rand, length int) []byte {
	baseline := rng.NormFloat64()*baselineSD + baselineMean

	qual := make([]byte, length)
	for i := range qual {
		var drawn float64
		if rng.Float64() < degradedRate {
			drawn = rng.NormFloat64()*degradedSD + degradedMean
		} else {
			drawn = rng.NormFloat64()*perBaseSD + baseline
		}

		q := int(drawn)
		if q < 0 {
			q = 0
		}
		if q > maxQual {
			q = maxQual
		}
		qual[i] = byte(q + phredOffset)
	}
	return qual
}
