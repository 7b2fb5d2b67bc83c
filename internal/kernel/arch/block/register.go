//go:build (amd64 || arm64) && !purego

package block

import "github.com/cwbudde/algo-strided/internal/kernel/registry"

// init registers the block variant. Families left nil here resolve to the
// generic entry.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vecmath",
		SIMDLevel: simdLevel,
		Priority:  10,

		Scalar64:       Scalar64,
		ScalarAssign64: ScalarAssign64,

		Copy32: Copy[float32],
		Copy64: Copy[float64],

		Binary64:       Binary64,
		BinaryAssign64: BinaryAssign64,
	})
}
