package array

import (
	"sync/atomic"

	"github.com/cwbudde/algo-strided/internal/cpu"
	"github.com/cwbudde/algo-strided/internal/kernel/registry"
)

// table holds the resolved function for every kernel family.
type table struct {
	name      string
	providers map[string]string

	scalar32       registry.ScalarFn[float32]
	scalar64       registry.ScalarFn[float64]
	scalarAssign32 registry.ScalarAssignFn[float32]
	scalarAssign64 registry.ScalarAssignFn[float64]
	unary32        registry.UnaryFn[float32]
	unary64        registry.UnaryFn[float64]
	unaryAssign32  registry.UnaryAssignFn[float32]
	unaryAssign64  registry.UnaryAssignFn[float64]
	copy32         registry.CopyFn[float32]
	copy64         registry.CopyFn[float64]
	clip32         registry.ClipFn[float32]
	clip64         registry.ClipFn[float64]
	clipAssign32   registry.ClipAssignFn[float32]
	clipAssign64   registry.ClipAssignFn[float64]
	fill32         registry.FillFn[float32]
	fill64         registry.FillFn[float64]
	binary32       registry.BinaryFn[float32]
	binary64       registry.BinaryFn[float64]
	binaryAssign32 registry.BinaryAssignFn[float32]
	binaryAssign64 registry.BinaryAssignFn[float64]
}

var active atomic.Pointer[table]

// kernels returns the resolved table, resolving it on first use. Concurrent
// first calls may both resolve; they produce equal tables.
func kernels() *table {
	if t := active.Load(); t != nil {
		return t
	}
	t := resolve(cpu.DetectFeatures())
	active.Store(t)
	return t
}

// Reselect drops the resolved kernels so the next call resolves them again
// from the current CPU features, e.g. after forcing pure Go loops. Calls
// already running keep the kernels they started with.
func Reselect() {
	active.Store(nil)
}

func resolve(features cpu.Features) *table {
	best := registry.Global.Lookup(features)
	if best == nil {
		panic("array: no kernel implementation registered (missing generic fallback?)")
	}
	cands := registry.Global.Candidates(features)

	t := &table{name: best.Name, providers: make(map[string]string)}

	t.scalar32 = pick(t, cands, "scalar/float", func(e *registry.OpEntry) (registry.ScalarFn[float32], bool) {
		return e.Scalar32, e.Scalar32 != nil
	})
	t.scalar64 = pick(t, cands, "scalar/double", func(e *registry.OpEntry) (registry.ScalarFn[float64], bool) {
		return e.Scalar64, e.Scalar64 != nil
	})
	t.scalarAssign32 = pick(t, cands, "scalar_assign/float", func(e *registry.OpEntry) (registry.ScalarAssignFn[float32], bool) {
		return e.ScalarAssign32, e.ScalarAssign32 != nil
	})
	t.scalarAssign64 = pick(t, cands, "scalar_assign/double", func(e *registry.OpEntry) (registry.ScalarAssignFn[float64], bool) {
		return e.ScalarAssign64, e.ScalarAssign64 != nil
	})
	t.unary32 = pick(t, cands, "unary/float", func(e *registry.OpEntry) (registry.UnaryFn[float32], bool) {
		return e.Unary32, e.Unary32 != nil
	})
	t.unary64 = pick(t, cands, "unary/double", func(e *registry.OpEntry) (registry.UnaryFn[float64], bool) {
		return e.Unary64, e.Unary64 != nil
	})
	t.unaryAssign32 = pick(t, cands, "unary_assign/float", func(e *registry.OpEntry) (registry.UnaryAssignFn[float32], bool) {
		return e.UnaryAssign32, e.UnaryAssign32 != nil
	})
	t.unaryAssign64 = pick(t, cands, "unary_assign/double", func(e *registry.OpEntry) (registry.UnaryAssignFn[float64], bool) {
		return e.UnaryAssign64, e.UnaryAssign64 != nil
	})
	t.copy32 = pick(t, cands, "copy/float", func(e *registry.OpEntry) (registry.CopyFn[float32], bool) {
		return e.Copy32, e.Copy32 != nil
	})
	t.copy64 = pick(t, cands, "copy/double", func(e *registry.OpEntry) (registry.CopyFn[float64], bool) {
		return e.Copy64, e.Copy64 != nil
	})
	t.clip32 = pick(t, cands, "clip/float", func(e *registry.OpEntry) (registry.ClipFn[float32], bool) {
		return e.Clip32, e.Clip32 != nil
	})
	t.clip64 = pick(t, cands, "clip/double", func(e *registry.OpEntry) (registry.ClipFn[float64], bool) {
		return e.Clip64, e.Clip64 != nil
	})
	t.clipAssign32 = pick(t, cands, "clip_assign/float", func(e *registry.OpEntry) (registry.ClipAssignFn[float32], bool) {
		return e.ClipAssign32, e.ClipAssign32 != nil
	})
	t.clipAssign64 = pick(t, cands, "clip_assign/double", func(e *registry.OpEntry) (registry.ClipAssignFn[float64], bool) {
		return e.ClipAssign64, e.ClipAssign64 != nil
	})
	t.fill32 = pick(t, cands, "fill/float", func(e *registry.OpEntry) (registry.FillFn[float32], bool) {
		return e.Fill32, e.Fill32 != nil
	})
	t.fill64 = pick(t, cands, "fill/double", func(e *registry.OpEntry) (registry.FillFn[float64], bool) {
		return e.Fill64, e.Fill64 != nil
	})
	t.binary32 = pick(t, cands, "binary/float", func(e *registry.OpEntry) (registry.BinaryFn[float32], bool) {
		return e.Binary32, e.Binary32 != nil
	})
	t.binary64 = pick(t, cands, "binary/double", func(e *registry.OpEntry) (registry.BinaryFn[float64], bool) {
		return e.Binary64, e.Binary64 != nil
	})
	t.binaryAssign32 = pick(t, cands, "binary_assign/float", func(e *registry.OpEntry) (registry.BinaryAssignFn[float32], bool) {
		return e.BinaryAssign32, e.BinaryAssign32 != nil
	})
	t.binaryAssign64 = pick(t, cands, "binary_assign/double", func(e *registry.OpEntry) (registry.BinaryAssignFn[float64], bool) {
		return e.BinaryAssign64, e.BinaryAssign64 != nil
	})

	return t
}

// pick returns the family function of the best candidate that provides it.
func pick[F any](t *table, cands []registry.OpEntry, family string, get func(*registry.OpEntry) (F, bool)) F {
	for i := range cands {
		if fn, ok := get(&cands[i]); ok {
			t.providers[family] = cands[i].Name
			return fn
		}
	}
	panic("array: no implementation provides " + family)
}

// Implementation returns the name of the highest-priority implementation
// selected for this CPU, e.g. "vecmath" or "generic".
func Implementation() string {
	return kernels().name
}

// Providers maps each kernel family ("scalar/double", "unary/float", ...) to
// the implementation serving it. Families the best implementation does not
// specialise are served by a lower-priority one.
func Providers() map[string]string {
	src := kernels().providers
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
