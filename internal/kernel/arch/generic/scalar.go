// Package generic implements every strided kernel in plain Go.
//
// Each function switches on the operation once and then runs a dedicated
// loop, so the per-element body is a single arithmetic instruction or a
// single math call. Pointers address logical index 0 and are never checked.
package generic

import (
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

func at[T any](base *T, off int) *T {
	return stride.At(base, off)
}

// Scalar computes out[i] = a[i] op scalar for i in [0, size).
// out may be a, which makes it equivalent to ScalarAssign.
func Scalar[T kernel.Float](op kernel.ScalarOp, a *T, size, stride int, scalar T, out *T) {
	switch op {
	case kernel.Add:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = *at(a, off) + scalar
		}
	case kernel.Sub:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = *at(a, off) - scalar
		}
	case kernel.Mul:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = *at(a, off) * scalar
		}
	case kernel.Div:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(out, off) = *at(a, off) / scalar
		}
	}
}

// ScalarAssign computes a[i] = a[i] op scalar for i in [0, size).
func ScalarAssign[T kernel.Float](op kernel.ScalarOp, a *T, size, stride int, scalar T) {
	switch op {
	case kernel.Add:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(a, off) += scalar
		}
	case kernel.Sub:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(a, off) -= scalar
		}
	case kernel.Mul:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(a, off) *= scalar
		}
	case kernel.Div:
		for i, off := 0, 0; i < size; i, off = i+1, off+stride {
			*at(a, off) /= scalar
		}
	}
}
