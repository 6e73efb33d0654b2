// Package distance provides the float32 distance kernels used by the SOM engine.
//
// All kernels accumulate strictly left to right in single precision, so a
// given pair of vectors always yields the same bit pattern regardless of
// platform. Best-matching-unit tie-breaks rely on this.
//
// # Usage
//
//	d := distance.SquaredL2(prototype, input)
//	g := distance.GridSquared(winX, winY, x, y)
package distance
