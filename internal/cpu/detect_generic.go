//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl leaves every vector flag unset, so only pure Go
// implementations are eligible.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
