package generic

import "github.com/cwbudde/algo-strided/kernel"

// Binary computes out[i] = a[i] op b[i] for i in [0, n). Each operand
// advances by its own increment.
func Binary[T kernel.Float](op kernel.ScalarOp, n int, a *T, incA int, b *T, incB int, out *T, incOut int) {
	switch op {
	case kernel.Add:
		for i, oa, ob, oo := 0, 0, 0, 0; i < n; i, oa, ob, oo = i+1, oa+incA, ob+incB, oo+incOut {
			*at(out, oo) = *at(a, oa) + *at(b, ob)
		}
	case kernel.Sub:
		for i, oa, ob, oo := 0, 0, 0, 0; i < n; i, oa, ob, oo = i+1, oa+incA, ob+incB, oo+incOut {
			*at(out, oo) = *at(a, oa) - *at(b, ob)
		}
	case kernel.Mul:
		for i, oa, ob, oo := 0, 0, 0, 0; i < n; i, oa, ob, oo = i+1, oa+incA, ob+incB, oo+incOut {
			*at(out, oo) = *at(a, oa) * *at(b, ob)
		}
	case kernel.Div:
		for i, oa, ob, oo := 0, 0, 0, 0; i < n; i, oa, ob, oo = i+1, oa+incA, ob+incB, oo+incOut {
			*at(out, oo) = *at(a, oa) / *at(b, ob)
		}
	}
}

// BinaryAssign computes a[i] = a[i] op b[i] for i in [0, n).
func BinaryAssign[T kernel.Float](op kernel.ScalarOp, n int, a *T, incA int, b *T, incB int) {
	switch op {
	case kernel.Add:
		for i, oa, ob := 0, 0, 0; i < n; i, oa, ob = i+1, oa+incA, ob+incB {
			*at(a, oa) += *at(b, ob)
		}
	case kernel.Sub:
		for i, oa, ob := 0, 0, 0; i < n; i, oa, ob = i+1, oa+incA, ob+incB {
			*at(a, oa) -= *at(b, ob)
		}
	case kernel.Mul:
		for i, oa, ob := 0, 0, 0; i < n; i, oa, ob = i+1, oa+incA, ob+incB {
			*at(a, oa) *= *at(b, ob)
		}
	case kernel.Div:
		for i, oa, ob := 0, 0, 0; i < n; i, oa, ob = i+1, oa+incA, ob+incB {
			*at(a, oa) /= *at(b, ob)
		}
	}
}
