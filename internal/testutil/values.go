package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-strided/kernel"
)

// Sentinel marks storage a kernel must not touch.
const Sentinel = -12345.5

// DeterministicValues returns n values uniformly spread over [lo, hi) from a
// fixed seed.
func DeterministicValues[T kernel.Float](seed int64, lo, hi float64, n int) []T {
	out := make([]T, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// Ramp returns n values start, start+step, ...
func Ramp[T kernel.Float](start, step float64, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(start + step*float64(i))
	}
	return out
}

// Walk is caller storage laid out for one strided call: Buf holds Sentinel
// everywhere except the Size visited elements, and Base is the index of
// logical element 0.
type Walk[T kernel.Float] struct {
	Buf    []T
	Base   int
	Size   int
	Stride int
}

// NewWalk allocates storage for size elements at stride with pad sentinel
// elements on either side, and stores values[i] at logical element i.
// Missing values are zero. With stride 0 the last value wins.
func NewWalk[T kernel.Float](size, stride, pad int, values []T) *Walk[T] {
	span := 1
	if size > 0 {
		span = 1 + (size-1)*abs(stride)
	}
	w := &Walk[T]{
		Buf:    Filled[T](span+2*pad, Sentinel),
		Base:   pad,
		Size:   size,
		Stride: stride,
	}
	if stride < 0 && size > 0 {
		w.Base = pad + (size-1)*(-stride)
	}
	for i := 0; i < size; i++ {
		var v T
		if i < len(values) {
			v = values[i]
		}
		w.Buf[w.Index(i)] = v
	}
	return w
}

// Index returns the position in Buf of logical element i.
func (w *Walk[T]) Index(i int) int {
	return w.Base + i*w.Stride
}

// Ptr returns a pointer to logical element 0.
func (w *Walk[T]) Ptr() *T {
	return &w.Buf[w.Base]
}

// Logical returns the visited elements in logical order.
func (w *Walk[T]) Logical() []T {
	out := make([]T, w.Size)
	for i := range out {
		out[i] = w.Buf[w.Index(i)]
	}
	return out
}

// Visited reports which positions of Buf the walk addresses.
func (w *Walk[T]) Visited() map[int]bool {
	m := make(map[int]bool, w.Size)
	for i := 0; i < w.Size; i++ {
		m[w.Index(i)] = true
	}
	return m
}

// Clone returns an independent copy of the walk.
func (w *Walk[T]) Clone() *Walk[T] {
	c := *w
	c.Buf = append([]T(nil), w.Buf...)
	return &c
}

// Filled returns n copies of v.
func Filled[T kernel.Float](n int, v T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsNaN reports whether x is NaN for either float type.
func IsNaN[T kernel.Float](x T) bool {
	return math.IsNaN(float64(x))
}

// SameFloat reports whether a and b are equal or both NaN.
func SameFloat[T kernel.Float](a, b T) bool {
	return a == b || (IsNaN(a) && IsNaN(b))
}

// SignBit reports whether x has its sign bit set.
func SignBit[T kernel.Float](x T) bool {
	return math.Signbit(float64(x))
}
