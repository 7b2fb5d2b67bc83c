package kernel

import "fmt"

// Type is the element type of a kernel.
type Type int

const (
	Float32 Type = iota
	Float64
)

// String returns the C spelling used in kernel names: "float" or "double".
func (t Type) String() string {
	switch t {
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// TypeOf returns the Type of T.
func TypeOf[T Float]() Type {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return Float32
	}
	return Float64
}

// ParseType accepts "float", "float32", "double" and "float64".
func ParseType(name string) (Type, bool) {
	switch name {
	case "float", "float32", "f32":
		return Float32, true
	case "double", "float64", "f64":
		return Float64, true
	}
	return 0, false
}

// Mode selects where results are written.
type Mode int

const (
	// Allocating writes results to a caller-provided output buffer.
	Allocating Mode = iota
	// InPlace overwrites the input buffer.
	InPlace
)

func (m Mode) String() string {
	if m == InPlace {
		return "in-place"
	}
	return "allocating"
}

// Family distinguishes scalar arithmetic kernels from unary function kernels.
type Family int

const (
	ScalarFamily Family = iota
	UnaryFamily
)

// Identity selects exactly one kernel.
type Identity struct {
	Family Family
	Scalar ScalarOp // meaningful when Family == ScalarFamily
	Unary  UnaryOp  // meaningful when Family == UnaryFamily
	Type   Type
	Mode   Mode
}

// Op returns the operation part of the name, e.g. "scalar_mul" or "tanh".
func (id Identity) Op() string {
	if id.Family == ScalarFamily {
		return id.Scalar.String()
	}
	return id.Unary.String()
}

// Name returns the flat kernel name: array_{op}_{type} for allocating
// kernels and array_{op}_assign_{type} for in-place ones.
func (id Identity) Name() string {
	if id.Mode == InPlace {
		return "array_" + id.Op() + "_assign_" + id.Type.String()
	}
	return "array_" + id.Op() + "_" + id.Type.String()
}

// Identities enumerates the whole table: every scalar op, then every unary
// op, each for float then double, each allocating then in place.
func Identities() []Identity {
	types := []Type{Float32, Float64}
	modes := []Mode{Allocating, InPlace}

	ids := make([]Identity, 0, (len(scalarOpNames)+len(unaryOps))*len(types)*len(modes))
	for _, op := range ScalarOps() {
		for _, t := range types {
			for _, m := range modes {
				ids = append(ids, Identity{Family: ScalarFamily, Scalar: op, Type: t, Mode: m})
			}
		}
	}
	for _, op := range UnaryOps() {
		for _, t := range types {
			for _, m := range modes {
				ids = append(ids, Identity{Family: UnaryFamily, Unary: op, Type: t, Mode: m})
			}
		}
	}
	return ids
}

// Lookup resolves a flat kernel name back to its identity.
func Lookup(name string) (Identity, bool) {
	for _, id := range Identities() {
		if id.Name() == name {
			return id, true
		}
	}
	return Identity{}, false
}
