//go:build !purego

package block

import "github.com/cwbudde/algo-strided/internal/cpu"

const simdLevel = cpu.SIMDNEON
