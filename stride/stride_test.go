package stride

import (
	"errors"
	"math"
	"testing"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		g    Geometry
		i    int
		want int
	}{
		{Geometry{Size: 4, Stride: 1}, 3, 3},
		{Geometry{Size: 4, Stride: 2}, 3, 6},
		{Geometry{Size: 4, Stride: -3}, 2, -6},
		{Geometry{Size: 4, Stride: 0}, 3, 0},
	}
	for _, tt := range tests {
		if got := tt.g.Offset(tt.i); got != tt.want {
			t.Errorf("%+v.Offset(%d) = %d, want %d", tt.g, tt.i, got, tt.want)
		}
	}
}

func TestExtent(t *testing.T) {
	tests := []struct {
		g    Geometry
		want int
	}{
		{Geometry{Size: 0, Stride: 5}, 0},
		{Geometry{Size: 1, Stride: 5}, 1},
		{Geometry{Size: 4, Stride: 1}, 4},
		{Geometry{Size: 2, Stride: 2}, 3},
		{Geometry{Size: 3, Stride: -2}, 5},
		{Geometry{Size: 7, Stride: 0}, 1},
	}
	for _, tt := range tests {
		if got := tt.g.Extent(); got != tt.want {
			t.Errorf("%+v.Extent() = %d, want %d", tt.g, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		g      Geometry
		base   int
		lo, hi int
	}{
		{Geometry{Size: 0, Stride: 1}, 3, 3, 3},
		{Geometry{Size: 4, Stride: 1}, 0, 0, 4},
		{Geometry{Size: 2, Stride: 2}, 0, 0, 3},
		{Geometry{Size: 3, Stride: -2}, 4, 0, 5},
		{Geometry{Size: 5, Stride: 0}, 2, 2, 3},
	}
	for _, tt := range tests {
		lo, hi := tt.g.Bounds(tt.base)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%+v.Bounds(%d) = [%d, %d), want [%d, %d)", tt.g, tt.base, lo, hi, tt.lo, tt.hi)
		}
		if tt.g.Size > 0 && hi-lo != tt.g.Extent() {
			t.Errorf("%+v: bounds width %d != extent %d", tt.g, hi-lo, tt.g.Extent())
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		n    int
		base int
		want error
	}{
		{"empty walk on empty buffer", Geometry{Size: 0, Stride: 7}, 0, 0, nil},
		{"contiguous fits", Geometry{Size: 4, Stride: 1}, 4, 0, nil},
		{"contiguous one short", Geometry{Size: 4, Stride: 1}, 3, 0, ErrOutOfRange},
		{"strided fits", Geometry{Size: 2, Stride: 2}, 3, 0, nil},
		{"reversed fits", Geometry{Size: 4, Stride: -1}, 4, 3, nil},
		{"reversed runs off front", Geometry{Size: 4, Stride: -1}, 4, 2, ErrOutOfRange},
		{"negative base", Geometry{Size: 1, Stride: 1}, 4, -1, ErrOutOfRange},
		{"zero stride", Geometry{Size: 100, Stride: 0}, 1, 0, nil},
		{"negative size", Geometry{Size: -1, Stride: 1}, 4, 0, ErrNegativeSize},
		{"span wraps around", Geometry{Size: 17, Stride: 1<<60 + 1}, 17, 0, ErrOutOfRange},
		{"span wraps backward", Geometry{Size: 17, Stride: -(1<<60 + 1)}, 17, 16, ErrOutOfRange},
		{"min int stride", Geometry{Size: 2, Stride: math.MinInt}, 4, 0, ErrOutOfRange},
		{"max int stride", Geometry{Size: 2, Stride: math.MaxInt}, 4, 0, ErrOutOfRange},
		{"base past end", Geometry{Size: 1, Stride: 1}, 4, 4, ErrOutOfRange},
		{"exact fit with large stride", Geometry{Size: 2, Stride: 9}, 10, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Check(tt.n, tt.base)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Check() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Check() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEachOrder(t *testing.T) {
	g := Geometry{Size: 5, Stride: -3}

	var idx, offs []int
	g.Each(func(i, off int) {
		idx = append(idx, i)
		offs = append(offs, off)
	})

	if len(idx) != g.Size {
		t.Fatalf("visited %d indices, want %d", len(idx), g.Size)
	}
	for i := range idx {
		if idx[i] != i {
			t.Errorf("visit %d: index %d, want %d", i, idx[i], i)
		}
		if offs[i] != g.Offset(i) {
			t.Errorf("visit %d: offset %d, want %d", i, offs[i], g.Offset(i))
		}
	}
}

func TestEachEmpty(t *testing.T) {
	called := false
	Geometry{Size: 0, Stride: 1}.Each(func(int, int) { called = true })
	if called {
		t.Fatal("Each visited an index of an empty walk")
	}
}

func TestSplit(t *testing.T) {
	g := Geometry{Size: 10, Stride: -2}
	pieces := g.Split(4)

	if len(pieces) != 3 {
		t.Fatalf("len(pieces) = %d, want 3", len(pieces))
	}

	next := 0
	for _, p := range pieces {
		if p.First != next {
			t.Fatalf("piece starts at %d, want %d", p.First, next)
		}
		if p.Stride != g.Stride {
			t.Fatalf("piece stride %d, want %d", p.Stride, g.Stride)
		}
		next += p.Size
	}
	if next != g.Size {
		t.Fatalf("pieces cover %d elements, want %d", next, g.Size)
	}

	if got := (Geometry{Size: 3, Stride: 1}).Split(0); len(got) != 1 || got[0].Size != 3 {
		t.Fatalf("Split(0) = %+v, want one full piece", got)
	}
	if got := (Geometry{}).Split(4); got != nil {
		t.Fatalf("Split of empty walk = %+v, want nil", got)
	}
}

func TestAt(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5}
	base := &buf[3]

	if got := *At(base, 2); got != 5 {
		t.Errorf("At(base, 2) = %v, want 5", got)
	}
	if got := *At(base, -3); got != 0 {
		t.Errorf("At(base, -3) = %v, want 0", got)
	}

	*At(base, -1) = 42
	if buf[2] != 42 {
		t.Errorf("write through At landed elsewhere: %v", buf)
	}

	f32 := []float32{10, 20, 30}
	if got := *At(&f32[0], 2); got != 30 {
		t.Errorf("float32 At(base, 2) = %v, want 30", got)
	}
}

func TestContiguousAliased(t *testing.T) {
	if !(Geometry{Size: 3, Stride: 1}).Contiguous() {
		t.Error("stride 1 should be contiguous")
	}
	if (Geometry{Size: 3, Stride: -1}).Contiguous() {
		t.Error("stride -1 should not be contiguous")
	}
	if !(Geometry{Size: 2, Stride: 0}).Aliased() {
		t.Error("stride 0 with two elements should alias")
	}
	if (Geometry{Size: 1, Stride: 0}).Aliased() {
		t.Error("a single element never aliases")
	}
}

func TestExtentSaturates(t *testing.T) {
	tests := []Geometry{
		{Size: 17, Stride: 1<<60 + 1},
		{Size: 2, Stride: math.MinInt},
		{Size: 2, Stride: math.MaxInt},
		{Size: math.MaxInt, Stride: 2},
	}
	for _, g := range tests {
		if got := g.Extent(); got != math.MaxInt {
			t.Errorf("%+v.Extent() = %d, want MaxInt", g, got)
		}
	}
}

func TestBoundsSaturates(t *testing.T) {
	g := Geometry{Size: 17, Stride: 1<<60 + 1}
	if lo, hi := g.Bounds(0); lo != 0 || hi != math.MaxInt {
		t.Errorf("forward overflow: Bounds(0) = [%d, %d)", lo, hi)
	}

	g.Stride = -g.Stride
	if lo, hi := g.Bounds(16); lo != math.MinInt || hi != 17 {
		t.Errorf("backward overflow: Bounds(16) = [%d, %d)", lo, hi)
	}

	g = Geometry{Size: 2, Stride: 1}
	if _, hi := g.Bounds(math.MaxInt - 1); hi != math.MaxInt {
		t.Errorf("Bounds near MaxInt: hi = %d", hi)
	}
}
