// Package registry holds the implementations of the strided kernels.
//
// Each implementation package registers an OpEntry from its init function.
// Package array asks Global for the highest-priority entry the current CPU
// supports and resolves every kernel family from it, falling back to lower
// priority entries for families the best entry leaves nil.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-strided/internal/cpu"
	"github.com/cwbudde/algo-strided/kernel"
)

// Function shapes shared by all implementations. Pointers address logical
// index 0; element i lives i*stride elements away.
type (
	ScalarFn[T kernel.Float]       func(op kernel.ScalarOp, a *T, size, stride int, scalar T, out *T)
	ScalarAssignFn[T kernel.Float] func(op kernel.ScalarOp, a *T, size, stride int, scalar T)
	UnaryFn[T kernel.Float]        func(op kernel.UnaryOp, a *T, size, stride int, out *T)
	UnaryAssignFn[T kernel.Float]  func(op kernel.UnaryOp, a *T, size, stride int)
	CopyFn[T kernel.Float]         func(n int, x *T, incX int, y *T, incY int)
	ClipFn[T kernel.Float]         func(a *T, size, stride int, lo, hi T, out *T)
	ClipAssignFn[T kernel.Float]   func(a *T, size, stride int, lo, hi T)
	FillFn[T kernel.Float]         func(a *T, size, stride int, v T)

	// Two-input kernels walk each operand with its own stride.
	BinaryFn[T kernel.Float]       func(op kernel.ScalarOp, n int, a *T, incA int, b *T, incB int, out *T, incOut int)
	BinaryAssignFn[T kernel.Float] func(op kernel.ScalarOp, n int, a *T, incA int, b *T, incB int)
)

// OpEntry is one registered implementation variant. Only the families the
// variant improves on need to be set.
type OpEntry struct {
	// Name identifies the variant, e.g. "generic" or "vecmath".
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	//   - generic: 0
	//   - vecmath: 10
	Priority int

	Scalar32       ScalarFn[float32]
	Scalar64       ScalarFn[float64]
	ScalarAssign32 ScalarAssignFn[float32]
	ScalarAssign64 ScalarAssignFn[float64]

	Unary32       UnaryFn[float32]
	Unary64       UnaryFn[float64]
	UnaryAssign32 UnaryAssignFn[float32]
	UnaryAssign64 UnaryAssignFn[float64]

	Copy32       CopyFn[float32]
	Copy64       CopyFn[float64]
	Clip32       ClipFn[float32]
	Clip64       ClipFn[float64]
	ClipAssign32 ClipAssignFn[float32]
	ClipAssign64 ClipAssignFn[float64]
	Fill32       FillFn[float32]
	Fill64       FillFn[float64]

	Binary32       BinaryFn[float32]
	Binary64       BinaryFn[float64]
	BinaryAssign32 BinaryAssignFn[float32]
	BinaryAssign64 BinaryAssignFn[float64]
}

// OpRegistry stores the registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries are in descending priority order
}

// Global is the registry the array package resolves from.
var Global = &OpRegistry{}

// Register adds a variant. All registrations should happen in init functions,
// before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority variant supported by features, or nil
// if none is (which means the generic variant was never registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	candidates := r.Candidates(features)
	if len(candidates) == 0 {
		return nil
	}
	return &candidates[0]
}

// Candidates returns every variant supported by features, best first.
func (r *OpRegistry) Candidates(features cpu.Features) []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []OpEntry
	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			out = append(out, r.entries[i])
		}
	}
	return out
}

// sortByPriority orders entries by descending priority, keeping registration
// order among equals. Must be called with r.mu held for writing.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset removes every entry. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
