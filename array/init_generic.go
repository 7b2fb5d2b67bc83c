//go:build purego || !(amd64 || arm64)

package array

import (
	// Pure Go loops only.
	_ "github.com/cwbudde/algo-strided/internal/kernel/arch/generic"
)
