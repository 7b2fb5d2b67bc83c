package generic

import (
	"github.com/cwbudde/algo-strided/internal/cpu"
	"github.com/cwbudde/algo-strided/internal/kernel/registry"
)

// init registers the pure Go loops. They cover every family and every
// geometry, so they are the fallback for whatever a faster variant skips.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Scalar32:       Scalar[float32],
		Scalar64:       Scalar[float64],
		ScalarAssign32: ScalarAssign[float32],
		ScalarAssign64: ScalarAssign[float64],

		Unary32:       Unary[float32],
		Unary64:       Unary[float64],
		UnaryAssign32: UnaryAssign[float32],
		UnaryAssign64: UnaryAssign[float64],

		Copy32:       Copy[float32],
		Copy64:       Copy[float64],
		Clip32:       Clip[float32],
		Clip64:       Clip[float64],
		ClipAssign32: ClipAssign[float32],
		ClipAssign64: ClipAssign[float64],
		Fill32:       Fill[float32],
		Fill64:       Fill[float64],

		Binary32:       Binary[float32],
		Binary64:       Binary[float64],
		BinaryAssign32: BinaryAssign[float32],
		BinaryAssign64: BinaryAssign[float64],
	})
}
