package checked_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-strided/checked"
	"github.com/cwbudde/algo-strided/kernel"
	"github.com/cwbudde/algo-strided/stride"
)

func ExampleScalarAssign() {
	buf := []float32{1, 2, 3, 4}
	if err := checked.ScalarAssign(kernel.Mul, checked.Strided(buf, 0, 2, 2), 10); err != nil {
		fmt.Println(err)
	}
	fmt.Println(buf)
	// Output: [10 2 30 4]
}

func ExampleUnary() {
	in := []float64{1, 4, 9, 16}
	out := make([]float64, len(in))
	// Input and output share one stride; use Copy to reverse.
	if err := checked.Unary(kernel.Sqrt, checked.Reversed(in), checked.Reversed(out)); err != nil {
		fmt.Println(err)
	}
	fmt.Println(out)
	// Output: [1 2 3 4]
}

func ExampleFill_outOfRange() {
	buf := make([]float64, 4)
	err := checked.Fill(checked.Strided(buf, 1, 3, 2), 1)
	fmt.Println(errors.Is(err, stride.ErrOutOfRange))
	// Output: true
}

func ExampleCopy() {
	src := []float64{1, 2, 3}
	dst := make([]float64, len(src))
	if err := checked.Copy(checked.Vec(src), checked.Reversed(dst)); err != nil {
		fmt.Println(err)
	}
	fmt.Println(dst)
	// Output: [3 2 1]
}
