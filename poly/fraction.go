package poly

import "fmt"

// Fraction is an exact rational number Num/Den. Values built with Frac or
// Whole are normalised: Den > 0 and gcd(|Num|, Den) == 1.
type Fraction struct {
	Num int
	Den int
}

// Frac returns the normalised fraction n/d. It panics if d == 0.
func Frac(n, d int) Fraction {
	if d == 0 {
		panic("poly: Frac with zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(abs(n), d); g > 1 {
		n, d = n/g, d/g
	}

	return Fraction{Num: n, Den: d}
}

// Whole returns the fraction n/1.
func Whole(n int) Fraction {
	return Fraction{Num: n, Den: 1}
}

// IsInteger reports whether f has denominator 1 after normalisation.
func (f Fraction) IsInteger() bool {
	return f.normalize().Den == 1
}

// String formats f as "n" or "n/d".
func (f Fraction) String() string {
	f = f.normalize()
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}

	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// normalize tolerates hand-built literals such as Fraction{2, 4} or
// Fraction{1, -2}. The zero value is treated as 0/1.
func (f Fraction) normalize() Fraction {
	if f.Den == 0 {
		return Fraction{Num: 0, Den: 1}
	}

	return Frac(f.Num, f.Den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
