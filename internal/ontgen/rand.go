// Package ontgen synthesizes dummy Oxford Nanopore sequencing reads
// with read length, quality and adapter characteristics statistically
// modeled on real ONT output
package ontgen

import (
	"math/rand"
)

// NewRand creates the generator that feeds every stochastic decision in
// a run. It is seeded once and passed through each sampling function so
// the draw order is fixed: the same seed reproduces the same dataset
// byte for byte.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
