// Package ops implements the vectorized array operations over array.Buffer.
//
// Every operation validates its arguments before touching any element,
// resolves the element type once, picks the lane-blocked or scalar kernel
// path (Options.NoSIMD forces scalar), applies the error-checking policy and
// then writes its result in place, to an output buffer, or returns it.
//
// By default integer overflow and non-finite float results fail with an
// error wrapping ErrArithmetic and nothing is written. Options.MathErrors
// disables those checks: integers wrap like native Go arithmetic and NaN/Inf
// propagate. Domain errors (factorial of a negative value, integer division
// by zero, negative exponents and shift counts) are raised either way.
package ops
