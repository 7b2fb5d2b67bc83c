//go:build (amd64 || arm64) && !purego

// Package block routes unit-stride float64 scaling and element-wise add and
// multiply through algo-vecmath's SIMD block kernels, and contiguous copies
// through the builtin copy. Every
// other geometry or operation falls through to the generic loops, so results
// are bit-identical to package generic.
package block

import (
	"unsafe"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-strided/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

// unit reports whether a non-empty walk is contiguous and forward.
func unit(size, step int) bool {
	return size > 0 && stride.Geometry{Size: size, Stride: step}.Contiguous()
}

// Scalar64 is generic.Scalar with a vectorised unit-stride multiply.
func Scalar64(op kernel.ScalarOp, a *float64, size, step int, scalar float64, out *float64) {
	if op == kernel.Mul && unit(size, step) {
		vecmath.ScaleBlock(unsafe.Slice(out, size), unsafe.Slice(a, size), scalar)
		return
	}
	generic.Scalar(op, a, size, step, scalar, out)
}

// ScalarAssign64 is generic.ScalarAssign with a vectorised unit-stride multiply.
func ScalarAssign64(op kernel.ScalarOp, a *float64, size, step int, scalar float64) {
	if op == kernel.Mul && unit(size, step) {
		vecmath.ScaleBlockInPlace(unsafe.Slice(a, size), scalar)
		return
	}
	generic.ScalarAssign(op, a, size, step, scalar)
}

// Copy uses the builtin copy when both walks are unit-stride.
func Copy[T kernel.Float](n int, x *T, incX int, y *T, incY int) {
	if unit(n, incX) && incY == 1 {
		copy(unsafe.Slice(y, n), unsafe.Slice(x, n))
		return
	}
	generic.Copy(n, x, incX, y, incY)
}

// Binary64 is generic.Binary with vectorised unit-stride add and multiply.
func Binary64(op kernel.ScalarOp, n int, a *float64, incA int, b *float64, incB int, out *float64, incOut int) {
	if unit(n, incA) && incB == 1 && incOut == 1 {
		switch op {
		case kernel.Add:
			vecmath.AddBlock(unsafe.Slice(out, n), unsafe.Slice(a, n), unsafe.Slice(b, n))
			return
		case kernel.Mul:
			vecmath.MulBlock(unsafe.Slice(out, n), unsafe.Slice(a, n), unsafe.Slice(b, n))
			return
		}
	}
	generic.Binary(op, n, a, incA, b, incB, out, incOut)
}

// BinaryAssign64 is generic.BinaryAssign with vectorised unit-stride add and
// multiply.
func BinaryAssign64(op kernel.ScalarOp, n int, a *float64, incA int, b *float64, incB int) {
	if unit(n, incA) && incB == 1 {
		switch op {
		case kernel.Add:
			vecmath.AddBlockInPlace(unsafe.Slice(a, n), unsafe.Slice(b, n))
			return
		case kernel.Mul:
			vecmath.MulBlockInPlace(unsafe.Slice(a, n), unsafe.Slice(b, n))
			return
		}
	}
	generic.BinaryAssign(op, n, a, incA, b, incB)
}
