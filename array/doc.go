// Package array is the flat kernel surface: one function per (operation,
// element type, mode), named after the C entry points callers link against.
//
//	array_scalar_add_float(a, size, stride, scalar, out)  ->  ScalarAddFloat
//	array_scalar_add_assign_float(a, size, stride, scalar) ->  ScalarAddAssignFloat
//	array_sin_double(a, size, stride, out)                 ->  SinDouble
//	array_sin_assign_double(a, size, stride)               ->  SinAssignDouble
//
// Every function reads logical element i at a + i*stride and writes it to
// out + i*stride (allocating mode) or back to a + i*stride (in-place mode).
// Pointers address logical element 0, strides count elements and may be
// negative or zero. out may equal a.
//
// The two-input kernels (AddDouble, MulAssignFloat, ...) and CopyFloat and
// CopyDouble take one increment per operand, BLAS style:
//
//	AddDouble(n, a, incA, b, incB, out, incOut)
//
// # Contract
//
// The caller is trusted. Nothing is validated: size must be non-negative and
// every addressed element must lie inside the caller's allocation. Violations
// are undefined behaviour. Division by zero and domain errors are not
// violations; they produce IEEE 754 infinities and NaNs.
//
// No function allocates, blocks, logs or returns a status. Calls on disjoint
// storage may run concurrently; calls on overlapping storage are a data race.
// Package checked offers validated, optionally parallel, wrappers built on
// these functions.
//
// # Dispatch
//
// Implementations register with an internal registry. The first call picks,
// per kernel family, the highest-priority implementation the CPU supports.
// Implementation reports the choice. Building with the purego tag restricts
// the choice to pure Go loops.
package array
