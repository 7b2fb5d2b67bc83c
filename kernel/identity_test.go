package kernel

import "testing"

func TestIdentitiesCount(t *testing.T) {
	ids := Identities()
	// 4 scalar + 12 unary ops, 2 types, 2 modes.
	if len(ids) != 64 {
		t.Fatalf("len(Identities()) = %d, want 64", len(ids))
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		name := id.Name()
		if seen[name] {
			t.Fatalf("duplicate kernel name %q", name)
		}
		seen[name] = true
	}
}

func TestIdentityNames(t *testing.T) {
	tests := []struct {
		id   Identity
		want string
	}{
		{Identity{Family: ScalarFamily, Scalar: Add, Type: Float32, Mode: Allocating}, "array_scalar_add_float"},
		{Identity{Family: ScalarFamily, Scalar: Div, Type: Float64, Mode: InPlace}, "array_scalar_div_assign_double"},
		{Identity{Family: UnaryFamily, Unary: Sin, Type: Float32, Mode: Allocating}, "array_sin_float"},
		{Identity{Family: UnaryFamily, Unary: Exp, Type: Float64, Mode: InPlace}, "array_exp_assign_double"},
		{Identity{Family: UnaryFamily, Unary: Tanh, Type: Float32, Mode: InPlace}, "array_tanh_assign_float"},
	}
	for _, tt := range tests {
		if got := tt.id.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, id := range Identities() {
		got, ok := Lookup(id.Name())
		if !ok {
			t.Fatalf("Lookup(%q) failed", id.Name())
		}
		if got != id {
			t.Fatalf("Lookup(%q) = %+v, want %+v", id.Name(), got, id)
		}
	}

	if _, ok := Lookup("array_log_float"); ok {
		t.Fatal("Lookup accepted a kernel outside the table")
	}
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"float", "float32", "f32"} {
		if got, ok := ParseType(name); !ok || got != Float32 {
			t.Errorf("ParseType(%q) = %v, %v", name, got, ok)
		}
	}
	for _, name := range []string{"double", "float64", "f64"} {
		if got, ok := ParseType(name); !ok || got != Float64 {
			t.Errorf("ParseType(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseType("half"); ok {
		t.Error("ParseType accepted half")
	}
}

func TestTypeOf(t *testing.T) {
	if TypeOf[float32]() != Float32 {
		t.Error("TypeOf[float32] != Float32")
	}
	if TypeOf[float64]() != Float64 {
		t.Error("TypeOf[float64] != Float64")
	}
}
