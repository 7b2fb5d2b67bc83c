package checked

import (
	"fmt"

	"github.com/cwbudde/algo-strided/array"
	"github.com/cwbudde/algo-strided/kernel"
)

// Scalar sets out[i] = a[i] op s. out may be a itself.
func Scalar[T kernel.Float](op kernel.ScalarOp, a Vector[T], s T, out Vector[T], opts ...Option) error {
	if !op.Valid() {
		return fmt.Errorf("checked: scalar op %d: %w", int(op), ErrInvalidOp)
	}
	if err := validatePair(a, out); err != nil {
		return fmt.Errorf("checked: %s: %w", op, err)
	}
	return run(ApplyOptions(opts...), out.Geometry, func(first, n int) {
		array.Scalar(op, a.ptr(first), n, a.Stride, s, out.ptr(first))
	})
}

// ScalarAssign sets a[i] = a[i] op s.
func ScalarAssign[T kernel.Float](op kernel.ScalarOp, a Vector[T], s T, opts ...Option) error {
	if !op.Valid() {
		return fmt.Errorf("checked: scalar op %d: %w", int(op), ErrInvalidOp)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("checked: %s_assign: %w", op, err)
	}
	return run(ApplyOptions(opts...), a.Geometry, func(first, n int) {
		array.ScalarAssign(op, a.ptr(first), n, a.Stride, s)
	})
}

// Unary sets out[i] = f(a[i]). out may be a itself.
func Unary[T kernel.Float](op kernel.UnaryOp, a, out Vector[T], opts ...Option) error {
	if !op.Valid() {
		return fmt.Errorf("checked: unary op %d: %w", int(op), ErrInvalidOp)
	}
	if err := validatePair(a, out); err != nil {
		return fmt.Errorf("checked: %s: %w", op, err)
	}
	return run(ApplyOptions(opts...), out.Geometry, func(first, n int) {
		array.Unary(op, a.ptr(first), n, a.Stride, out.ptr(first))
	})
}

// UnaryAssign sets a[i] = f(a[i]).
func UnaryAssign[T kernel.Float](op kernel.UnaryOp, a Vector[T], opts ...Option) error {
	if !op.Valid() {
		return fmt.Errorf("checked: unary op %d: %w", int(op), ErrInvalidOp)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("checked: %s_assign: %w", op, err)
	}
	return run(ApplyOptions(opts...), a.Geometry, func(first, n int) {
		array.UnaryAssign(op, a.ptr(first), n, a.Stride)
	})
}

// Copy sets dst[i] = src[i]. The vectors must have the same size; their
// strides are independent.
func Copy[T kernel.Float](src, dst Vector[T], opts ...Option) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("checked: copy: input: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("checked: copy: output: %w", err)
	}
	if src.Size != dst.Size {
		return fmt.Errorf("checked: copy: %w: input size %d, output size %d",
			ErrGeometryMismatch, src.Size, dst.Size)
	}
	if err := overlap(src, dst); err != nil {
		return fmt.Errorf("checked: copy: %w", err)
	}
	return run(ApplyOptions(opts...), dst.Geometry, func(first, n int) {
		array.Copy(n, src.ptr(first), src.Stride, dst.ptr(first), dst.Stride)
	})
}

// Clip sets out[i] to a[i] clamped to [lo, hi]. NaN elements pass through.
func Clip[T kernel.Float](a Vector[T], lo, hi T, out Vector[T], opts ...Option) error {
	if err := clipRange(lo, hi); err != nil {
		return fmt.Errorf("checked: clip: %w", err)
	}
	if err := validatePair(a, out); err != nil {
		return fmt.Errorf("checked: clip: %w", err)
	}
	return run(ApplyOptions(opts...), out.Geometry, func(first, n int) {
		array.Clip(a.ptr(first), n, a.Stride, lo, hi, out.ptr(first))
	})
}

// ClipAssign clamps a[i] to [lo, hi].
func ClipAssign[T kernel.Float](a Vector[T], lo, hi T, opts ...Option) error {
	if err := clipRange(lo, hi); err != nil {
		return fmt.Errorf("checked: clip_assign: %w", err)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("checked: clip_assign: %w", err)
	}
	return run(ApplyOptions(opts...), a.Geometry, func(first, n int) {
		array.ClipAssign(a.ptr(first), n, a.Stride, lo, hi)
	})
}

// Fill sets a[i] = v.
func Fill[T kernel.Float](a Vector[T], v T, opts ...Option) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("checked: fill: %w", err)
	}
	return run(ApplyOptions(opts...), a.Geometry, func(first, n int) {
		array.Fill(a.ptr(first), n, a.Stride, v)
	})
}

// Binary sets out[i] = a[i] op b[i]. The three vectors must have the same
// size; their strides are independent. out may be a or b itself.
func Binary[T kernel.Float](op kernel.ScalarOp, a, b, out Vector[T], opts ...Option) error {
	if !op.Valid() {
		return fmt.Errorf("checked: binary op %d: %w", int(op), ErrInvalidOp)
	}
	if err := validateOperands(a, b, out); err != nil {
		return fmt.Errorf("checked: %s: %w", op, err)
	}
	return run(ApplyOptions(opts...), out.Geometry, func(first, n int) {
		array.Binary(op, n, a.ptr(first), a.Stride, b.ptr(first), b.Stride, out.ptr(first), out.Stride)
	})
}

// BinaryAssign sets a[i] = a[i] op b[i]. The vectors must have the same size.
func BinaryAssign[T kernel.Float](op kernel.ScalarOp, a, b Vector[T], opts ...Option) error {
	if !op.Valid() {
		return fmt.Errorf("checked: binary op %d: %w", int(op), ErrInvalidOp)
	}
	if err := validateOperands(a, b, a); err != nil {
		return fmt.Errorf("checked: %s_assign: %w", op, err)
	}
	return run(ApplyOptions(opts...), a.Geometry, func(first, n int) {
		array.BinaryAssign(op, n, a.ptr(first), a.Stride, b.ptr(first), b.Stride)
	})
}

func clipRange[T kernel.Float](lo, hi T) error {
	if !(lo <= hi) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	return nil
}
