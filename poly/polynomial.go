// SPDX-License-Identifier: MIT
//
// File: polynomial.go
// Role: Polynomial value type, constructors and read-only accessors.
// Policy:
//   - Values are immutable; accessors hand out copies.
//   - The zero value is the zero polynomial at root index 1.

package poly

// Polynomial is a Laurent polynomial in t whose exponents are multiples of
// 1/Root(). terms[i] is the coefficient of t^((lowest+i)/root).
type Polynomial struct {
	root   int
	lowest int
	terms  []int
}

// New builds a polynomial at root index root with the given coefficients
// for consecutive exponent numerators starting at lowest.
//
// Errors:
//   - ErrBadRoot if root < 1.
//
// Complexity: O(len(terms)).
func New(root, lowest int, terms ...int) (Polynomial, error) {
	if root < 1 {
		return Polynomial{}, ErrBadRoot
	}

	return Polynomial{root: root, lowest: lowest, terms: cloneInts(terms)}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(root, lowest int, terms ...int) Polynomial {
	p, err := New(root, lowest, terms...)
	if err != nil {
		panic(err)
	}

	return p
}

// One returns the multiplicative unit 1.
func One() Polynomial {
	return Polynomial{root: 1, lowest: 0, terms: []int{1}}
}

// Zero returns the additive identity 0.
func Zero() Polynomial {
	return Polynomial{root: 1}
}

// Monomial returns c·t^exp.
func Monomial(c int, exp Fraction) Polynomial {
	exp = exp.normalize()

	return Polynomial{root: exp.Den, lowest: exp.Num, terms: []int{c}}
}

// Root returns the root index n: exponents are multiples of 1/n.
func (p Polynomial) Root() int {
	if p.root < 1 {
		return 1
	}

	return p.root
}

// Lowest returns the numerator of the first stored exponent.
func (p Polynomial) Lowest() int { return p.lowest }

// Terms returns a copy of the stored coefficients.
func (p Polynomial) Terms() []int { return cloneInts(p.terms) }

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p.terms {
		if c != 0 {
			return false
		}
	}

	return true
}

// Coefficient returns the coefficient of t^exp, or 0 when exp is not
// representable at p's root index or lies outside the stored range.
func (p Polynomial) Coefficient(exp Fraction) int {
	exp = exp.normalize()
	root := p.Root()
	if root%exp.Den != 0 {
		return 0
	}
	idx := exp.Num*(root/exp.Den) - p.lowest
	if idx < 0 || idx >= len(p.terms) {
		return 0
	}

	return p.terms[idx]
}

func cloneInts(src []int) []int {
	if len(src) == 0 {
		return nil
	}
	dst := make([]int, len(src))
	copy(dst, src)

	return dst
}
