// Package kernel names the closed set of element-wise kernels.
//
// A kernel is identified by an operation kind, an element type and a result
// mode. There are four scalar arithmetic kinds (ScalarOp) and twelve unary
// elementary functions (UnaryOp), each for float32 ("float") and float64
// ("double"), each allocating (separate output) or in place. Identity.Name
// renders the flat names callers link against, e.g. "array_scalar_add_float"
// or "array_sqrt_assign_double".
//
// The enumeration is fixed at compile time. Implementations switch on the
// kind once per call and run a dedicated loop per kind; see package array.
package kernel
