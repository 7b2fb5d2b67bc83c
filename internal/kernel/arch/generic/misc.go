package generic

import "github.com/cwbudde/algo-strided/kernel"

// Copy sets y[i*incY] = x[i*incX] for i in [0, n). The two walks have
// independent strides.
func Copy[T kernel.Float](n int, x *T, incX int, y *T, incY int) {
	for i, ox, oy := 0, 0, 0; i < n; i, ox, oy = i+1, ox+incX, oy+incY {
		*at(y, oy) = *at(x, ox)
	}
}

// Clip writes a[i] clamped to [lo, hi] to out[i]. NaN passes through.
func Clip[T kernel.Float](a *T, size, stride int, lo, hi T, out *T) {
	for i, off := 0, 0; i < size; i, off = i+1, off+stride {
		*at(out, off) = clamp(*at(a, off), lo, hi)
	}
}

// ClipAssign clamps a[i] to [lo, hi] in place.
func ClipAssign[T kernel.Float](a *T, size, stride int, lo, hi T) {
	for i, off := 0, 0; i < size; i, off = i+1, off+stride {
		p := at(a, off)
		*p = clamp(*p, lo, hi)
	}
}

// Fill sets every visited element to v.
func Fill[T kernel.Float](a *T, size, stride int, v T) {
	for i, off := 0, 0; i < size; i, off = i+1, off+stride {
		*at(a, off) = v
	}
}

func clamp[T kernel.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
