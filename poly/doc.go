// Package poly implements exact Laurent polynomials whose exponents are
// multiples of 1/n for a positive integer n, the "root index".
//
// A Polynomial is the triple (root, lowest, terms): the coefficient terms[i]
// belongs to the exponent (lowest+i)/root. The representation is not unique,
// two values that differ only by zero padding or by refinement of the root
// index are Equal:
//
//	t + t^3 - t^4        New(1, 1, 1, 0, 1, -1)
//	the same value       New(2, 2, 1, 0, 0, 0, 1, 0, -1)
//
// Operations:
//
//   - Refine(k)         re-express at root index root*k (value preserving).
//   - Add, Sub, Scale   termwise arithmetic at the least common root index.
//   - Mul               Laurent product.
//   - ShiftPower(f)     multiply by t^f for an exact Fraction f.
//   - Equal             value equality under trimming and refinement.
//   - DerivativeCoefficient(i)
//     Σ c·(n/root)^i / i! over integral non-zero exponents n/root.
//
// Every operation returns a new value; a Polynomial is never mutated after
// construction, so values may be shared freely between goroutines.
//
// Coefficients are Go ints. Arithmetic is exact as long as intermediate
// results fit in the platform int.
package poly
