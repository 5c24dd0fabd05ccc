// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Arithmetic on Polynomial values.
// Determinism:
//   - Pure functions of their inputs; results never alias the operands.

package poly

import (
	"fmt"
	"strings"
)

// Refine re-expresses p at root index p.Root()*k without changing its value:
// k-1 zero coefficients are inserted between consecutive terms and the
// lowest numerator is scaled by k.
//
// Refine panics if k < 1.
//
// Complexity: O(k·len(terms)).
func (p Polynomial) Refine(k int) Polynomial {
	if k < 1 {
		panic(fmt.Sprintf("poly: Refine factor %d < 1", k))
	}
	root := p.Root() * k
	if k == 1 || len(p.terms) == 0 {
		return Polynomial{root: root, lowest: p.lowest * k, terms: cloneInts(p.terms)}
	}

	terms := make([]int, (len(p.terms)-1)*k+1)
	for i, c := range p.terms {
		terms[i*k] = c
	}

	return Polynomial{root: root, lowest: p.lowest * k, terms: terms}
}

// Add returns p+q at the least common multiple of both root indices.
//
// Complexity: O(len(p)+len(q)) after refinement.
func (p Polynomial) Add(q Polynomial) Polynomial {
	root := lcm(p.Root(), q.Root())
	a := p.Refine(root / p.Root())
	b := q.Refine(root / q.Root())
	if len(a.terms) == 0 {
		return b.Trim()
	}
	if len(b.terms) == 0 {
		return a.Trim()
	}

	lowest := min(a.lowest, b.lowest)
	end := max(a.lowest+len(a.terms), b.lowest+len(b.terms))
	terms := make([]int, end-lowest)
	for i, c := range a.terms {
		terms[a.lowest-lowest+i] += c
	}
	for i, c := range b.terms {
		terms[b.lowest-lowest+i] += c
	}

	return Polynomial{root: root, lowest: lowest, terms: terms}.Trim()
}

// Scale returns k·p.
func (p Polynomial) Scale(k int) Polynomial {
	terms := make([]int, len(p.terms))
	for i, c := range p.terms {
		terms[i] = k * c
	}

	return Polynomial{root: p.Root(), lowest: p.lowest, terms: terms}
}

// Sub returns p-q, defined as p.Add(q.Scale(-1)).
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Scale(-1))
}

// Mul returns the Laurent product p·q.
//
// Complexity: O(len(p)·len(q)) after refinement.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	root := lcm(p.Root(), q.Root())
	a := p.Refine(root / p.Root()).Trim()
	b := q.Refine(root / q.Root()).Trim()
	if len(a.terms) == 0 || len(b.terms) == 0 {
		return Polynomial{root: root}
	}

	terms := make([]int, len(a.terms)+len(b.terms)-1)
	for i, x := range a.terms {
		for j, y := range b.terms {
			terms[i+j] += x * y
		}
	}

	return Polynomial{root: root, lowest: a.lowest + b.lowest, terms: terms}
}

// ShiftPower returns p·t^exp. When exp's denominator does not divide the
// root index, p is first refined to the smallest compatible root index.
func (p Polynomial) ShiftPower(exp Fraction) Polynomial {
	exp = exp.normalize()
	root := p.Root()
	if root%exp.Den != 0 {
		p = p.Refine(exp.Den / gcd(root, exp.Den))
		root = p.root
	}

	return Polynomial{root: root, lowest: p.lowest + exp.Num*(root/exp.Den), terms: cloneInts(p.terms)}
}

// Trim drops leading and trailing zero coefficients. The zero polynomial
// trims to an empty term list with lowest 0.
func (p Polynomial) Trim() Polynomial {
	lo, hi := 0, len(p.terms)
	for lo < hi && p.terms[lo] == 0 {
		lo++
	}
	for hi > lo && p.terms[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return Polynomial{root: p.Root()}
	}

	return Polynomial{root: p.Root(), lowest: p.lowest + lo, terms: cloneInts(p.terms[lo:hi])}
}

// Simplify trims p and lowers its root index as far as the non-zero
// exponents allow. Simplify(p) is Equal to p.
func (p Polynomial) Simplify() Polynomial {
	p = p.Trim()
	if len(p.terms) == 0 {
		return Polynomial{root: 1}
	}

	g := p.root
	for i, c := range p.terms {
		if c != 0 {
			g = gcd(g, abs(p.lowest+i))
		}
		if g == 1 {
			return p
		}
	}

	terms := make([]int, (len(p.terms)-1)/g+1)
	for i, c := range p.terms {
		if c != 0 {
			terms[i/g] = c
		}
	}

	return Polynomial{root: p.root / g, lowest: p.lowest / g, terms: terms}
}

// Equal reports whether p and q represent the same Laurent polynomial.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.Trim(), q.Trim()
	if len(a.terms) == 0 || len(b.terms) == 0 {
		return len(a.terms) == len(b.terms)
	}

	root := lcm(a.root, b.root)
	a = a.Refine(root / a.root)
	b = b.Refine(root / b.root)
	if a.lowest != b.lowest || len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if a.terms[i] != b.terms[i] {
			return false
		}
	}

	return true
}

// DerivativeCoefficient evaluates Σ c·(n/root)^i / i! over the terms whose
// exponent n/root is a non-zero integer, reduced to lowest terms. Fractional
// exponents do not contribute.
//
// DerivativeCoefficient panics if i < 0.
func (p Polynomial) DerivativeCoefficient(i int) Fraction {
	if i < 0 {
		panic(fmt.Sprintf("poly: DerivativeCoefficient order %d < 0", i))
	}
	root := p.Root()
	sum := 0
	for idx, c := range p.terms {
		n := p.lowest + idx
		if n != 0 && n%root == 0 {
			sum += c * ipow(n/root, i)
		}
	}

	return Frac(sum, factorial(i))
}

// String renders p in ascending exponent order, e.g. "t + t^3 - t^4" or
// "-t^(-1/2) - t^(1/2)". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	p = p.Simplify()
	if len(p.terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	first := true
	for i, c := range p.terms {
		if c == 0 {
			continue
		}
		exp := Frac(p.lowest+i, p.root)
		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		mag := abs(c)
		if mag != 1 || exp.Num == 0 {
			fmt.Fprintf(&sb, "%d", mag)
		}
		switch {
		case exp.Num == 0:
		case exp.Num == 1 && exp.Den == 1:
			sb.WriteString("t")
		case exp.Den == 1:
			fmt.Fprintf(&sb, "t^%d", exp.Num)
		default:
			fmt.Fprintf(&sb, "t^(%d/%d)", exp.Num, exp.Den)
		}
	}

	return sb.String()
}

func ipow(base, exp int) int {
	r := 1
	for ; exp > 0; exp-- {
		r *= base
	}

	return r
}

func factorial(n int) int {
	r := 1
	for k := 2; k <= n; k++ {
		r *= k
	}

	return r
}
