package generic

import (
	"math"

	"github.com/cwbudde/algo-strided/kernel"
)

// Unary computes out[i] = f(a[i]) for i in [0, size), f being the function
// named by op. float32 elements are evaluated in float64 and rounded once.
func Unary[T kernel.Float](op kernel.UnaryOp, a *T, size, stride int, out *T) {
	switch op {
	case kernel.Abs:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = T(math.Abs(float64(*at(a, off))))
		}
	case kernel.Sqrt:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = T(math.Sqrt(float64(*at(a, off))))
		}
	default:
		fn := op.Func()
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = T(fn(float64(*at(a, off))))
		}
	}
}

// UnaryAssign computes a[i] = f(a[i]) for i in [0, size).
func UnaryAssign[T kernel.Float](op kernel.UnaryOp, a *T, size, stride int) {
	switch op {
	case kernel.Abs:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			p := at(a, off)
			*p = T(math.Abs(float64(*p)))
		}
	case kernel.Sqrt:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			p := at(a, off)
			*p = T(math.Sqrt(float64(*p)))
		}
	default:
		fn := op.Func()
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			p := at(a, off)
			*p = T(fn(float64(*p)))
		}
	}
}
