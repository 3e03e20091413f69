package ontgen

import (
	"math"
	"math/rand"
)

const (
	// medianLength is the median of the log-normal read length distribution
	medianLength = 5000

	// lengthSigma is the spread of the underlying normal distribution
	lengthSigma = 0.7

	// minLength and maxLength bound sampled read lengths
	minLength = 200
	maxLength = 100000
)

// sampleLength draws one read length from a log-normal distribution
// mimicking ONT read lengths: median ~5kb with a long tail, clamped to
// [minLength, maxLength] to avoid degenerate extremes
func sampleLength(rng *rand.Rand) int {
	length := int(math.Exp(math.Log(medianLength) + lengthSigma*rng.NormFloat64()))

	if length < minLength {
		return minLength
	}
	if length > maxLength {
		return maxLength
	}
	return length
}
