package somgo

import "math/rand/v2"

// RandomSource supplies the uniform [0, 1) draws used by Reset.
//
// testutil.RNG and testutil.Sequence implement RandomSource for reproducible maps.
type RandomSource interface {
	Float32() float32
}

// RandomFunc adapts an ordinary function to RandomSource.
type RandomFunc func() float32

// Float32 implements RandomSource.
func (f RandomFunc) Float32() float32 { return f() }

// defaultRandomSource draws from the automatically seeded math/rand/v2 generator.
func defaultRandomSource() RandomSource {
	return RandomFunc(rand.Float32)
}
