// Package checked runs the strided kernels of package array on Go slices.
//
// A Vector names a strided walk over a slice: logical element i lives at
// Data[Base+i*Stride]. Every operation validates its vectors before touching
// memory and returns an error instead of corrupting storage:
//
//   - negative sizes and walks leaving Data (stride.ErrNegativeSize,
//     stride.ErrOutOfRange)
//   - input and output of different size or stride (ErrGeometryMismatch);
//     Copy, Binary and BinaryAssign only require equal sizes
//   - input and output sharing storage other than element for element
//     (ErrOverlap); passing the same vector as input and output is allowed
//
// Large calls are split into disjoint logical ranges that run concurrently.
// Each range goes through the same kernel as a sequential call would, so the
// results do not depend on the worker count.
package checked
