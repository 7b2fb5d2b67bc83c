//go:build !purego

package block

import "github.com/cwbudde/algo-strided/internal/cpu"

// algo-vecmath needs at least SSE2, which every amd64 core has.
const simdLevel = cpu.SIMDSSE2
