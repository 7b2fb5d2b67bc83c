package generic

import "github.com/cwbudde/algo-strided/internal/kernel/registry"

func registryEntries() []registry.OpEntry {
	return registry.Global.ListEntries()
}
