package array

import (
	"unsafe"

	"github.com/cwbudde/algo-strided/kernel"
)

// The generic forms dispatch on the dynamic type of the pointer argument.
// kernel.Float is exactly float32 | float64, so the unsafe reinterpretations
// below never change the representation of a value.

// Scalar applies op with scalar s to size elements of a, writing out.
func Scalar[T kernel.Float](op kernel.ScalarOp, a *T, size, stride int, s T, out *T) {
	switch p := any(a).(type) {
	case *float32:
		kernels().scalar32(op, p, size, stride, *(*float32)(unsafe.Pointer(&s)), (*float32)(unsafe.Pointer(out)))
	case *float64:
		kernels().scalar64(op, p, size, stride, *(*float64)(unsafe.Pointer(&s)), (*float64)(unsafe.Pointer(out)))
	}
}

// ScalarAssign applies op with scalar s to size elements of a in place.
func ScalarAssign[T kernel.Float](op kernel.ScalarOp, a *T, size, stride int, s T) {
	switch p := any(a).(type) {
	case *float32:
		kernels().scalarAssign32(op, p, size, stride, *(*float32)(unsafe.Pointer(&s)))
	case *float64:
		kernels().scalarAssign64(op, p, size, stride, *(*float64)(unsafe.Pointer(&s)))
	}
}

// Unary applies op to size elements of a, writing out.
func Unary[T kernel.Float](op kernel.UnaryOp, a *T, size, stride int, out *T) {
	switch p := any(a).(type) {
	case *float32:
		kernels().unary32(op, p, size, stride, (*float32)(unsafe.Pointer(out)))
	case *float64:
		kernels().unary64(op, p, size, stride, (*float64)(unsafe.Pointer(out)))
	}
}

// UnaryAssign applies op to size elements of a in place.
func UnaryAssign[T kernel.Float](op kernel.UnaryOp, a *T, size, stride int) {
	switch p := any(a).(type) {
	case *float32:
		kernels().unaryAssign32(op, p, size, stride)
	case *float64:
		kernels().unaryAssign64(op, p, size, stride)
	}
}

// Copy sets y[i*incY] = x[i*incX] for i in [0, n).
func Copy[T kernel.Float](n int, x *T, incX int, y *T, incY int) {
	switch p := any(x).(type) {
	case *float32:
		kernels().copy32(n, p, incX, (*float32)(unsafe.Pointer(y)), incY)
	case *float64:
		kernels().copy64(n, p, incX, (*float64)(unsafe.Pointer(y)), incY)
	}
}

// Clip writes size elements of a clamped to [lo, hi] to out.
func Clip[T kernel.Float](a *T, size, stride int, lo, hi T, out *T) {
	switch p := any(a).(type) {
	case *float32:
		kernels().clip32(p, size, stride,
			*(*float32)(unsafe.Pointer(&lo)), *(*float32)(unsafe.Pointer(&hi)),
			(*float32)(unsafe.Pointer(out)))
	case *float64:
		kernels().clip64(p, size, stride,
			*(*float64)(unsafe.Pointer(&lo)), *(*float64)(unsafe.Pointer(&hi)),
			(*float64)(unsafe.Pointer(out)))
	}
}

// ClipAssign clamps size elements of a to [lo, hi] in place.
func ClipAssign[T kernel.Float](a *T, size, stride int, lo, hi T) {
	switch p := any(a).(type) {
	case *float32:
		kernels().clipAssign32(p, size, stride,
			*(*float32)(unsafe.Pointer(&lo)), *(*float32)(unsafe.Pointer(&hi)))
	case *float64:
		kernels().clipAssign64(p, size, stride,
			*(*float64)(unsafe.Pointer(&lo)), *(*float64)(unsafe.Pointer(&hi)))
	}
}

// Fill sets size elements of a to v.
func Fill[T kernel.Float](a *T, size, stride int, v T) {
	switch p := any(a).(type) {
	case *float32:
		kernels().fill32(p, size, stride, *(*float32)(unsafe.Pointer(&v)))
	case *float64:
		kernels().fill64(p, size, stride, *(*float64)(unsafe.Pointer(&v)))
	}
}

// Binary sets out[i*incOut] = a[i*incA] op b[i*incB] for i in [0, n).
func Binary[T kernel.Float](op kernel.ScalarOp, n int, a *T, incA int, b *T, incB int, out *T, incOut int) {
	switch p := any(a).(type) {
	case *float32:
		kernels().binary32(op, n, p, incA, (*float32)(unsafe.Pointer(b)), incB, (*float32)(unsafe.Pointer(out)), incOut)
	case *float64:
		kernels().binary64(op, n, p, incA, (*float64)(unsafe.Pointer(b)), incB, (*float64)(unsafe.Pointer(out)), incOut)
	}
}

// BinaryAssign sets a[i*incA] = a[i*incA] op b[i*incB] for i in [0, n).
func BinaryAssign[T kernel.Float](op kernel.ScalarOp, n int, a *T, incA int, b *T, incB int) {
	switch p := any(a).(type) {
	case *float32:
		kernels().binaryAssign32(op, n, p, incA, (*float32)(unsafe.Pointer(b)), incB)
	case *float64:
		kernels().binaryAssign64(op, n, p, incA, (*float64)(unsafe.Pointer(b)), incB)
	}
}
