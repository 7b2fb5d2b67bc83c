// Package stride maps logical indices of a one-dimensional strided walk to
// storage offsets.
//
// A walk is described by a Geometry: Size logical elements, Stride storage
// elements apart. Logical index i lives at offset i*Stride from the element
// that holds logical index 0 (the base). Offsets are in elements, not bytes.
//
// Any integer stride is accepted. A negative stride walks storage backward
// from the base; a zero stride makes every logical index alias the base
// element. Neither case is an error here: callers that do not want aliasing
// must reject it themselves.
//
// Geometry.Check validates a walk against a slice for callers that want
// guarded access. At is the unguarded pointer step used by the trusted kernels
// in package array.
package stride
