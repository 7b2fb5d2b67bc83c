package array

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-strided/internal/testutil"
	"github.com/cwbudde/algo-strided/kernel"
)

var binaryStrides = []int{1, 2, -1, -3}

type binaryCase[T kernel.Float] struct {
	name   string
	op     kernel.ScalarOp
	alloc  func(int, *T, int, *T, int, *T, int)
	assign func(int, *T, int, *T, int)
}

func binaryCases[T kernel.Float]() []binaryCase[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any([]binaryCase[float32]{
			{"add/float", kernel.Add, AddFloat, AddAssignFloat},
			{"mul/float", kernel.Mul, MulFloat, MulAssignFloat},
		}).([]binaryCase[T])
	default:
		return any([]binaryCase[float64]{
			{"add/double", kernel.Add, AddDouble, AddAssignDouble},
			{"mul/double", kernel.Mul, MulDouble, MulAssignDouble},
		}).([]binaryCase[T])
	}
}

func TestBinaryStrideGrid(t *testing.T) {
	t.Run("float", checkBinaryGrid[float32])
	t.Run("double", checkBinaryGrid[float64])
}

func checkBinaryGrid[T kernel.Float](t *testing.T) {
	for _, c := range binaryCases[T]() {
		for _, size := range testSizes {
			for _, sa := range binaryStrides {
				for _, sb := range binaryStrides {
					for _, so := range binaryStrides {
						a := testutil.NewWalk(size, sa, 2, testutil.DeterministicValues[T](int64(size), -4, 4, size))
						b := testutil.NewWalk(size, sb, 2, testutil.DeterministicValues[T](int64(size)+7, -4, 4, size))
						out := testutil.NewWalk[T](size, so, 2, nil)
						for i := 0; i < size; i++ {
							out.Buf[out.Index(i)] = testutil.Sentinel
						}
						origA, origB := a.Clone(), b.Clone()

						c.alloc(size, a.Ptr(), sa, b.Ptr(), sb, out.Ptr(), so)

						testutil.RequireIdentical(t, a.Buf, origA.Buf)
						testutil.RequireIdentical(t, b.Buf, origB.Buf)
						testutil.RequireUntouched(t, out.Buf, out.Visited())
						av, bv := a.Logical(), b.Logical()
						for i, got := range out.Logical() {
							if want := kernel.Apply(c.op, av[i], bv[i]); !testutil.SameFloat(got, want) {
								t.Fatalf("%s size=%d strides=%d/%d/%d: element %d = %v, want %v",
									c.name, size, sa, sb, so, i, got, want)
							}
						}

						c.assign(size, a.Ptr(), sa, b.Ptr(), sb)

						testutil.RequireUntouched(t, a.Buf, a.Visited())
						testutil.RequireIdentical(t, a.Logical(), out.Logical())
					}
				}
			}
		}
	}
}

func TestBinaryBroadcast(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	gain := []float64{0.5}
	out := testutil.Filled[float64](4, testutil.Sentinel)

	MulDouble(4, &a[0], 1, &gain[0], 0, &out[0], 1)
	testutil.RequireIdentical(t, out, []float64{0.5, 1, 1.5, 2})

	AddAssignDouble(4, &a[3], -1, &gain[0], 0)
	testutil.RequireIdentical(t, a, []float64{1.5, 2.5, 3.5, 4.5})
}

func TestBinaryOutputMayAliasInput(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6}
	b := []float32{10, 20, 30}

	// out is a walking the same elements backward.
	AddFloat(3, &a[4], -2, &b[0], 1, &a[4], -2)
	testutil.RequireIdentical(t, a, []float32{31, 2, 23, 4, 15, 6})

	MulFloat(3, &b[0], 1, &b[0], 1, &b[0], 1)
	testutil.RequireIdentical(t, b, []float32{100, 400, 900})
}

func TestBinaryGenericForm(t *testing.T) {
	a := []float64{8, 6, 4}
	b := []float64{2, 3, 4}
	out := make([]float64, 3)

	Binary(kernel.Div, 3, &a[0], 1, &b[0], 1, &out[0], 1)
	testutil.RequireIdentical(t, out, []float64{4, 2, 1})

	BinaryAssign(kernel.Sub, 3, &a[0], 1, &b[2], -1)
	testutil.RequireIdentical(t, a, []float64{4, 3, 2})

	f := []float32{1, 2}
	Binary(kernel.Mul, 2, &f[0], 1, &f[1], -1, &f[0], 1)
	testutil.RequireIdentical(t, f, []float32{2, 4})
}

func TestBinaryForcedGenericMatchesDefault(t *testing.T) {
	a := testutil.DeterministicValues[float64](3, -50, 50, 257)
	b := testutil.DeterministicValues[float64](4, -50, 50, 257)

	fastAdd := make([]float64, len(a))
	AddDouble(len(a), &a[0], 1, &b[0], 1, &fastAdd[0], 1)
	fastMul := append([]float64(nil), a...)
	MulAssignDouble(len(a), &fastMul[0], 1, &b[0], 1)

	forceGeneric(t)
	require.Equal(t, "generic", Providers()["binary/double"])

	slowAdd := make([]float64, len(a))
	AddDouble(len(a), &a[0], 1, &b[0], 1, &slowAdd[0], 1)
	slowMul := append([]float64(nil), a...)
	MulAssignDouble(len(a), &slowMul[0], 1, &b[0], 1)

	testutil.RequireIdentical(t, fastAdd, slowAdd)
	testutil.RequireIdentical(t, fastMul, slowMul)
}
