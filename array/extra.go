package array

// CopyFloat sets y[i*incY] = x[i*incX] for i in [0, n). The strides are
// independent, so CopyFloat can gather, scatter or reverse.
func CopyFloat(n int, x *float32, incX int, y *float32, incY int) {
	kernels().copy32(n, x, incX, y, incY)
}

// CopyDouble is CopyFloat for float64.
func CopyDouble(n int, x *float64, incX int, y *float64, incY int) {
	kernels().copy64(n, x, incX, y, incY)
}

// ClipFloat sets out[i] to a[i] clamped to [lo, hi]. NaN elements pass
// through unchanged.
func ClipFloat(a *float32, size, stride int, lo, hi float32, out *float32) {
	kernels().clip32(a, size, stride, lo, hi, out)
}

// ClipDouble is ClipFloat for float64.
func ClipDouble(a *float64, size, stride int, lo, hi float64, out *float64) {
	kernels().clip64(a, size, stride, lo, hi, out)
}

// ClipAssignFloat clamps a[i] to [lo, hi] in place.
func ClipAssignFloat(a *float32, size, stride int, lo, hi float32) {
	kernels().clipAssign32(a, size, stride, lo, hi)
}

// ClipAssignDouble is ClipAssignFloat for float64.
func ClipAssignDouble(a *float64, size, stride int, lo, hi float64) {
	kernels().clipAssign64(a, size, stride, lo, hi)
}

// FillFloat sets a[i] = v for i in [0, size).
func FillFloat(a *float32, size, stride int, v float32) {
	kernels().fill32(a, size, stride, v)
}

// FillDouble is FillFloat for float64.
func FillDouble(a *float64, size, stride int, v float64) {
	kernels().fill64(a, size, stride, v)
}
