// Package kernels implements the element loops behind the array operations.
//
// Every loop exists twice: an element-at-a-time scalar form and a
// lane-blocked form that walks the buffer in vector-width blocks with
// bounds-check-free inner loops, per-lane accumulators for reductions and,
// for float64, the SIMD block kernels carried by the registry entry. Both
// forms return bit-identical results and report the same fault index, so
// callers can switch between them freely (nosimd).
//
// Elementwise drivers can run a probe pass first. The probe computes every
// result without writing and stops at the first fault, which lets callers
// fail without leaving partial output behind.
package kernels
