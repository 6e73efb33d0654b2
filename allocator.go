package somgo

import "github.com/hupe1980/somgo/internal/mem"

// Allocator provides and releases the weight buffer of a Map.
//
// Alloc must return a zeroed slice of exactly n elements. Free is called once,
// from Close, with the slice Alloc returned.
type Allocator interface {
	Alloc(n int) []float32
	Free(buf []float32)
}

// AlignedAllocator is the default Allocator. Buffers start on a cache-line
// boundary; Free leaves reclamation to the garbage collector.
type AlignedAllocator struct{}

// Alloc implements Allocator.
func (AlignedAllocator) Alloc(n int) []float32 {
	return mem.AllocAlignedFloat32(n)
}

// Free implements Allocator.
func (AlignedAllocator) Free([]float32) {}
