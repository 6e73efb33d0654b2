// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Weight buffers start on a cache-line boundary (at least 64 bytes, AVX-512
// friendly) so that one prototype row never straddles an extra line.
package mem
