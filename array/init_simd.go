//go:build (amd64 || arm64) && !purego

package array

// Importing the implementation packages runs their init functions, which
// register them with the kernel registry.
import (
	_ "github.com/cwbudde/algo-strided/internal/kernel/arch/block"
	_ "github.com/cwbudde/algo-strided/internal/kernel/arch/generic"
)
