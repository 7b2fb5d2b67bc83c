package checked

import "errors"

var (
	// ErrGeometryMismatch is returned when input and output walks differ in
	// size or stride.
	ErrGeometryMismatch = errors.New("checked: input and output geometry differ")
	// ErrOverlap is returned when input and output share storage other than
	// element for element.
	ErrOverlap = errors.New("checked: input and output overlap")
	// ErrInvalidOp is returned for an operator outside the kernel table.
	ErrInvalidOp = errors.New("checked: invalid operator")
	// ErrInvalidRange is returned by clip when lo > hi or a bound is NaN.
	ErrInvalidRange = errors.New("checked: invalid clip range")
)
