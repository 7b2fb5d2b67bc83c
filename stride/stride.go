package stride

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrNegativeSize is returned for a walk with fewer than zero elements.
	ErrNegativeSize = errors.New("stride: size must be non-negative")
	// ErrOutOfRange is returned when a walk leaves the storage it is checked against.
	ErrOutOfRange = errors.New("stride: walk exceeds buffer")
)

// Geometry is the shape of a strided walk.
type Geometry struct {
	Size   int
	Stride int
}

// Offset returns the storage offset of logical index i relative to the base.
func (g Geometry) Offset(i int) int {
	return i * g.Stride
}

// Extent returns how many storage elements the walk spans, endpoints
// included: 0 for an empty walk, otherwise 1 + (Size-1)*|Stride|. A span
// that does not fit in an int saturates to math.MaxInt.
func (g Geometry) Extent() int {
	if g.Size <= 0 {
		return 0
	}
	r, ok := g.reach()
	if !ok || r == math.MaxInt {
		return math.MaxInt
	}
	return r + 1
}

// reach returns (Size-1)*|Stride| and whether it fits in an int.
func (g Geometry) reach() (int, bool) {
	if g.Size <= 1 || g.Stride == 0 {
		return 0, true
	}
	if g.Stride == math.MinInt {
		return 0, false
	}
	s := abs(g.Stride)
	if s > math.MaxInt/(g.Size-1) {
		return 0, false
	}
	return (g.Size - 1) * s, true
}

// Bounds returns the half-open range [lo, hi) of storage indices touched
// when logical index 0 sits at index base. An empty walk yields lo == hi == base.
// Ranges beyond the int range saturate at math.MinInt or math.MaxInt.
func (g Geometry) Bounds(base int) (lo, hi int) {
	if g.Size <= 0 {
		return base, base
	}
	r, ok := g.reach()
	if g.Stride < 0 {
		if !ok || base < math.MinInt+r {
			lo = math.MinInt
		} else {
			lo = base - r
		}
		return lo, sat(base, 1)
	}
	if !ok {
		return base, math.MaxInt
	}
	return base, sat(sat(base, r), 1)
}

// sat returns a+b for b >= 0, saturating at math.MaxInt.
func sat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Contiguous reports whether consecutive logical elements are adjacent in storage.
func (g Geometry) Contiguous() bool {
	return g.Stride == 1
}

// Aliased reports whether more than one logical index maps to the same element.
func (g Geometry) Aliased() bool {
	return g.Stride == 0 && g.Size > 1
}

// Validate reports whether the geometry itself is well formed.
func (g Geometry) Validate() error {
	if g.Size < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSize, g.Size)
	}
	return nil
}

// Check reports whether a walk with logical index 0 at base stays inside a
// buffer of n elements. An empty walk never touches memory and always passes.
func (g Geometry) Check(n, base int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Size == 0 {
		return nil
	}
	if base < 0 || base >= n || g.Extent() > n {
		return g.outOfRange(n, base)
	}
	lo, hi := g.Bounds(base)
	if lo < 0 || hi > n {
		return g.outOfRange(n, base)
	}
	return nil
}

func (g Geometry) outOfRange(n, base int) error {
	return fmt.Errorf("%w: size %d stride %d from base %d spans %d elements, buffer has %d",
		ErrOutOfRange, g.Size, g.Stride, base, g.Extent(), n)
}

// Each calls fn for every logical index in increasing order together with its
// storage offset. Nothing is called for an empty walk.
func (g Geometry) Each(fn func(i, off int)) {
	off := 0
	for i := 0; i < g.Size; i++ {
		fn(i, off)
		off += g.Stride
	}
}

// Split cuts the walk into consecutive pieces of at most chunk logical
// elements. Each piece reports its first logical index and its own geometry;
// the piece's base is the parent base plus Offset(first).
func (g Geometry) Split(chunk int) []Piece {
	if g.Size <= 0 {
		return nil
	}
	if chunk <= 0 || chunk >= g.Size {
		return []Piece{{First: 0, Geometry: g}}
	}
	pieces := make([]Piece, 0, (g.Size+chunk-1)/chunk)
	for first := 0; first < g.Size; first += chunk {
		n := min(chunk, g.Size-first)
		pieces = append(pieces, Piece{
			First:    first,
			Geometry: Geometry{Size: n, Stride: g.Stride},
		})
	}
	return pieces
}

// Piece is a consecutive logical sub-range of a walk.
type Piece struct {
	First int
	Geometry
}

// At returns the element off elements away from base. No bounds are checked:
// the caller guarantees that the addressed element belongs to the same
// allocation as base.
func At[T any](base *T, off int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(base), off*int(unsafe.Sizeof(zero))))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
