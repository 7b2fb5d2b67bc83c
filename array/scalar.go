package array

import "github.com/cwbudde/algo-strided/kernel"

// ScalarAddFloat sets out[i] = a[i] + scalar for i in [0, size).
func ScalarAddFloat(a *float32, size, stride int, scalar float32, out *float32) {
	kernels().scalar32(kernel.Add, a, size, stride, scalar, out)
}

// ScalarAddAssignFloat sets a[i] = a[i] + scalar in place.
func ScalarAddAssignFloat(a *float32, size, stride int, scalar float32) {
	kernels().scalarAssign32(kernel.Add, a, size, stride, scalar)
}

// ScalarSubFloat sets out[i] = a[i] - scalar for i in [0, size).
func ScalarSubFloat(a *float32, size, stride int, scalar float32, out *float32) {
	kernels().scalar32(kernel.Sub, a, size, stride, scalar, out)
}

// ScalarSubAssignFloat sets a[i] = a[i] - scalar in place.
func ScalarSubAssignFloat(a *float32, size, stride int, scalar float32) {
	kernels().scalarAssign32(kernel.Sub, a, size, stride, scalar)
}

// ScalarMulFloat sets out[i] = a[i] * scalar for i in [0, size).
func ScalarMulFloat(a *float32, size, stride int, scalar float32, out *float32) {
	kernels().scalar32(kernel.Mul, a, size, stride, scalar, out)
}

// ScalarMulAssignFloat sets a[i] = a[i] * scalar in place.
func ScalarMulAssignFloat(a *float32, size, stride int, scalar float32) {
	kernels().scalarAssign32(kernel.Mul, a, size, stride, scalar)
}

// ScalarDivFloat sets out[i] = a[i] / scalar for i in [0, size).
// A zero scalar yields signed infinities, and NaN for zero elements.
func ScalarDivFloat(a *float32, size, stride int, scalar float32, out *float32) {
	kernels().scalar32(kernel.Div, a, size, stride, scalar, out)
}

// ScalarDivAssignFloat sets a[i] = a[i] / scalar in place.
func ScalarDivAssignFloat(a *float32, size, stride int, scalar float32) {
	kernels().scalarAssign32(kernel.Div, a, size, stride, scalar)
}

// ScalarAddDouble sets out[i] = a[i] + scalar for i in [0, size).
func ScalarAddDouble(a *float64, size, stride int, scalar float64, out *float64) {
	kernels().scalar64(kernel.Add, a, size, stride, scalar, out)
}

// ScalarAddAssignDouble sets a[i] = a[i] + scalar in place.
func ScalarAddAssignDouble(a *float64, size, stride int, scalar float64) {
	kernels().scalarAssign64(kernel.Add, a, size, stride, scalar)
}

// ScalarSubDouble sets out[i] = a[i] - scalar for i in [0, size).
func ScalarSubDouble(a *float64, size, stride int, scalar float64, out *float64) {
	kernels().scalar64(kernel.Sub, a, size, stride, scalar, out)
}

// ScalarSubAssignDouble sets a[i] = a[i] - scalar in place.
func ScalarSubAssignDouble(a *float64, size, stride int, scalar float64) {
	kernels().scalarAssign64(kernel.Sub, a, size, stride, scalar)
}

// ScalarMulDouble sets out[i] = a[i] * scalar for i in [0, size).
func ScalarMulDouble(a *float64, size, stride int, scalar float64, out *float64) {
	kernels().scalar64(kernel.Mul, a, size, stride, scalar, out)
}

// ScalarMulAssignDouble sets a[i] = a[i] * scalar in place.
func ScalarMulAssignDouble(a *float64, size, stride int, scalar float64) {
	kernels().scalarAssign64(kernel.Mul, a, size, stride, scalar)
}

// ScalarDivDouble sets out[i] = a[i] / scalar for i in [0, size).
// A zero scalar yields signed infinities, and NaN for zero elements.
func ScalarDivDouble(a *float64, size, stride int, scalar float64, out *float64) {
	kernels().scalar64(kernel.Div, a, size, stride, scalar, out)
}

// ScalarDivAssignDouble sets a[i] = a[i] / scalar in place.
func ScalarDivAssignDouble(a *float64, size, stride int, scalar float64) {
	kernels().scalarAssign64(kernel.Div, a, size, stride, scalar)
}
