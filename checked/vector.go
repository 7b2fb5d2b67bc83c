package checked

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

// Vector is a strided view of Data with logical element 0 at Data[Base].
type Vector[T kernel.Float] struct {
	Data []T
	Base int
	stride.Geometry
}

// Vec views all of data front to back.
func Vec[T kernel.Float](data []T) Vector[T] {
	return Vector[T]{Data: data, Geometry: stride.Geometry{Size: len(data), Stride: 1}}
}

// Strided views size elements of data starting at base, stride apart.
func Strided[T kernel.Float](data []T, base, size, step int) Vector[T] {
	return Vector[T]{Data: data, Base: base, Geometry: stride.Geometry{Size: size, Stride: step}}
}

// Reversed views all of data back to front.
func Reversed[T kernel.Float](data []T) Vector[T] {
	return Vector[T]{Data: data, Base: max(len(data)-1, 0), Geometry: stride.Geometry{Size: len(data), Stride: -1}}
}

// Validate reports whether the walk stays inside Data.
func (v Vector[T]) Validate() error {
	return v.Check(len(v.Data), v.Base)
}

// Values copies the logical elements into a new slice. v must be valid.
func (v Vector[T]) Values() []T {
	out := make([]T, v.Size)
	v.Each(func(i, off int) {
		out[i] = v.Data[v.Base+off]
	})
	return out
}

// ptr returns the address of logical element i.
func (v Vector[T]) ptr(i int) *T {
	return &v.Data[v.Base+v.Offset(i)]
}

// span returns the address range [lo, hi) of the touched elements.
func (v Vector[T]) span() (lo, hi uintptr) {
	first, last := v.Bounds(v.Base)
	if first == last {
		return 0, 0
	}
	return addr(&v.Data[first]), addr(&v.Data[last-1]) + elemSize[T]()
}

func addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// validatePair checks an input and an output vector that share geometry.
func validatePair[T kernel.Float](in, out Vector[T]) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if in.Geometry != out.Geometry {
		return fmt.Errorf("%w: input size %d stride %d, output size %d stride %d",
			ErrGeometryMismatch, in.Size, in.Stride, out.Size, out.Stride)
	}
	return overlap(in, out)
}

// validateOperands checks two inputs and an output of equal size whose
// strides may differ.
func validateOperands[T kernel.Float](a, b, out Vector[T]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("first input: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("second input: %w", err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if a.Size != out.Size || b.Size != out.Size {
		return fmt.Errorf("%w: input sizes %d and %d, output size %d",
			ErrGeometryMismatch, a.Size, b.Size, out.Size)
	}
	if err := overlap(a, out); err != nil {
		return err
	}
	return overlap(b, out)
}

// overlap rejects vectors that share an element at different logical
// indices. Identical views are allowed, and so are walks that interleave
// without sharing elements.
func overlap[T kernel.Float](in, out Vector[T]) error {
	if in.Size == 0 || out.Size == 0 {
		return nil
	}
	inLo, inHi := in.span()
	outLo, outHi := out.span()
	if inHi <= outLo || outHi <= inLo {
		return nil
	}

	p, q := addr(in.ptr(0)), addr(out.ptr(0))
	if p == q && in.Stride == out.Stride {
		return nil
	}
	if in.Stride == out.Stride && in.Stride != 0 {
		diff := (int(q) - int(p)) / int(elemSize[T]())
		if (int(q)-int(p))%int(elemSize[T]()) == 0 && diff%in.Stride != 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: input [%#x, %#x) and output [%#x, %#x)", ErrOverlap, inLo, inHi, outLo, outHi)
}
