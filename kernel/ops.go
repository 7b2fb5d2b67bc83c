package kernel

import (
	"fmt"
	"math"
)

// Float is the set of element types the kernels operate on.
type Float interface {
	float32 | float64
}

// ScalarOp is an arithmetic operator combining each element with one scalar.
type ScalarOp int

const (
	Add ScalarOp = iota
	Sub
	Mul
	Div
)

var scalarOpNames = [...]string{
	Add: "scalar_add",
	Sub: "scalar_sub",
	Mul: "scalar_mul",
	Div: "scalar_div",
}

// String returns the operator's name in the flat naming scheme.
func (op ScalarOp) String() string {
	if op < 0 || int(op) >= len(scalarOpNames) {
		return fmt.Sprintf("ScalarOp(%d)", int(op))
	}
	return scalarOpNames[op]
}

// Valid reports whether op is one of the four defined operators.
func (op ScalarOp) Valid() bool {
	return op >= Add && op <= Div
}

// Apply returns x op s under IEEE 754 rules. Division by zero yields a signed
// infinity or NaN and is not treated specially.
func Apply[T Float](op ScalarOp, x, s T) T {
	switch op {
	case Add:
		return x + s
	case Sub:
		return x - s
	case Mul:
		return x * s
	case Div:
		return x / s
	}
	panic(fmt.Sprintf("kernel: invalid scalar op %d", int(op)))
}

// ScalarOps returns every scalar operator in declaration order.
func ScalarOps() []ScalarOp {
	return []ScalarOp{Add, Sub, Mul, Div}
}

// UnaryOp is an elementary function applied to each element.
type UnaryOp int

const (
	Sin UnaryOp = iota
	Cos
	Tan
	Asin
	Acos
	Atan
	Sinh
	Cosh
	Tanh
	Abs
	Sqrt
	Exp
)

var unaryOps = [...]struct {
	name string
	fn   func(float64) float64
}{
	Sin:  {"sin", math.Sin},
	Cos:  {"cos", math.Cos},
	Tan:  {"tan", math.Tan},
	Asin: {"asin", math.Asin},
	Acos: {"acos", math.Acos},
	Atan: {"atan", math.Atan},
	Sinh: {"sinh", math.Sinh},
	Cosh: {"cosh", math.Cosh},
	Tanh: {"tanh", math.Tanh},
	Abs:  {"abs", math.Abs},
	Sqrt: {"sqrt", math.Sqrt},
	Exp:  {"exp", math.Exp},
}

// String returns the function's name in the flat naming scheme.
func (op UnaryOp) String() string {
	if !op.Valid() {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
	return unaryOps[op].name
}

// Valid reports whether op is one of the twelve defined functions.
func (op UnaryOp) Valid() bool {
	return op >= Sin && op <= Exp
}

// Func returns the float64 elementary function behind op. Domain violations
// (asin(2), sqrt(-1), ...) return NaN, as the math package does.
func (op UnaryOp) Func() func(float64) float64 {
	if !op.Valid() {
		panic(fmt.Sprintf("kernel: invalid unary op %d", int(op)))
	}
	return unaryOps[op].fn
}

// Eval applies op to a single value. float32 inputs are widened, evaluated
// in float64 and rounded once.
func Eval[T Float](op UnaryOp, x T) T {
	return T(op.Func()(float64(x)))
}

// UnaryOps returns every unary function in declaration order.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, 0, len(unaryOps))
	for op := Sin; op <= Exp; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseScalarOp resolves "add", "scalar_add" and the like.
func ParseScalarOp(name string) (ScalarOp, bool) {
	for op, n := range scalarOpNames {
		if name == n || "scalar_"+name == n {
			return ScalarOp(op), true
		}
	}
	return 0, false
}

// ParseUnaryOp resolves a function name such as "sqrt".
func ParseUnaryOp(name string) (UnaryOp, bool) {
	for op := range unaryOps {
		if unaryOps[op].name == name {
			return UnaryOp(op), true
		}
	}
	return 0, false
}
