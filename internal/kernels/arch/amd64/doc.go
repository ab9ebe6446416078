// Package amd64 registers the x86-64 entries (SSE2, AVX, AVX2, AVX-512).
//
// The float64 add/mul/scale block kernels come from algo-vecmath, which
// picks its own assembly for the running CPU.
package amd64
