package array

import "github.com/cwbudde/algo-strided/kernel"

// Two-input element-wise kernels. Every operand carries its own increment,
// so a, b and out may walk forward, backward or broadcast (increment 0)
// independently. out may be a or b when it walks with the same increment.

// AddFloat sets out[i*incOut] = a[i*incA] + b[i*incB] for i in [0, n).
func AddFloat(n int, a *float32, incA int, b *float32, incB int, out *float32, incOut int) {
	kernels().binary32(kernel.Add, n, a, incA, b, incB, out, incOut)
}

// AddDouble is AddFloat for float64.
func AddDouble(n int, a *float64, incA int, b *float64, incB int, out *float64, incOut int) {
	kernels().binary64(kernel.Add, n, a, incA, b, incB, out, incOut)
}

// AddAssignFloat sets a[i*incA] += b[i*incB] for i in [0, n).
func AddAssignFloat(n int, a *float32, incA int, b *float32, incB int) {
	kernels().binaryAssign32(kernel.Add, n, a, incA, b, incB)
}

// AddAssignDouble is AddAssignFloat for float64.
func AddAssignDouble(n int, a *float64, incA int, b *float64, incB int) {
	kernels().binaryAssign64(kernel.Add, n, a, incA, b, incB)
}

// MulFloat sets out[i*incOut] = a[i*incA] * b[i*incB] for i in [0, n).
func MulFloat(n int, a *float32, incA int, b *float32, incB int, out *float32, incOut int) {
	kernels().binary32(kernel.Mul, n, a, incA, b, incB, out, incOut)
}

// MulDouble is MulFloat for float64.
func MulDouble(n int, a *float64, incA int, b *float64, incB int, out *float64, incOut int) {
	kernels().binary64(kernel.Mul, n, a, incA, b, incB, out, incOut)
}

// MulAssignFloat sets a[i*incA] *= b[i*incB] for i in [0, n).
func MulAssignFloat(n int, a *float32, incA int, b *float32, incB int) {
	kernels().binaryAssign32(kernel.Mul, n, a, incA, b, incB)
}

// MulAssignDouble is MulAssignFloat for float64.
func MulAssignDouble(n int, a *float64, incA int, b *float64, incB int) {
	kernels().binaryAssign64(kernel.Mul, n, a, incA, b, incB)
}
