package osl

import opensimplex "github.com/ojrac/opensimplex-go"

// Noise4 is the 4-dimensional coherent noise primitive consumed by the
// engine. Implementations must be deterministic for fixed inputs, return
// values in [-1, 1], and be safe for concurrent calls.
//
// opensimplex.Noise satisfies Noise4 and is the default implementation;
// inject an alternative with [WithNoise].
type Noise4 interface {
	Eval4(x, y, z, w float64) float64
}

// newNoise returns the default OpenSimplex generator for a seed.
func newNoise(seed int64) Noise4 {
	return opensimplex.New(seed)
}
