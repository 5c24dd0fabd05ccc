// Package braid implements Artin braid words on n strands: stacking,
// side-by-side composition, inversion, free reduction, ASCII rendering and
// closure into a link diagram.
//
// Generator g (1 <= |g| < n) crosses strands |g|-1 and |g|; g > 0 is a
// positive crossing, g < 0 its inverse and 0 the identity.
package braid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegativeStrands indicates a braid with fewer than zero strands.
	ErrNegativeStrands = errors.New("braid: number of strands must be non-negative")

	// ErrBadGenerator indicates a generator g with |g| >= n.
	ErrBadGenerator = errors.New("braid: generator out of range")

	// ErrIncompatibleStacking indicates vertical stacking of braids with
	// different strand counts.
	ErrIncompatibleStacking = errors.New("braid: cannot stack braids with different numbers of strands")
)

// Braid is an immutable braid word on n strands. The zero value is the
// empty braid on zero strands.
type Braid struct {
	n    int
	word []int
}

// New returns the braid on n strands with the given generators.
func New(n int, word ...int) (Braid, error) {
	if n < 0 {
		return Braid{}, fmt.Errorf("%w: %d", ErrNegativeStrands, n)
	}
	for i, g := range word {
		if g >= n || g <= -n {
			return Braid{}, fmt.Errorf("%w: position %d has %d, want (-%d,%d)", ErrBadGenerator, i, g, n, n)
		}
	}

	return Braid{n: n, word: append([]int(nil), word...)}, nil
}

// MustNew is New that panics on error.
func MustNew(n int, word ...int) Braid {
	b, err := New(n, word...)
	if err != nil {
		panic(err)
	}

	return b
}

// Identity returns the trivial braid on n strands. It panics if n < 0.
func Identity(n int) Braid {
	return MustNew(n)
}

// Strands returns the number of strands.
func (b Braid) Strands() int { return b.n }

// Word returns a copy of the generator word.
func (b Braid) Word() []int { return append([]int(nil), b.word...) }

// StackUnder places o below b: b's word followed by o's.
func (b Braid) StackUnder(o Braid) (Braid, error) {
	if b.n != o.n {
		return Braid{}, fmt.Errorf("%w: %d strands under %d strands", ErrIncompatibleStacking, o.n, b.n)
	}
	word := make([]int, 0, len(b.word)+len(o.word))
	word = append(word, b.word...)
	word = append(word, o.word...)

	return Braid{n: b.n, word: word}, nil
}

// StackOver places o above b.
func (b Braid) StackOver(o Braid) (Braid, error) {
	return o.StackUnder(b)
}

// ConjoinRight places o to the right of b; o's generators move up by b's
// strand count.
func (b Braid) ConjoinRight(o Braid) Braid {
	word := append([]int(nil), b.word...)
	for _, g := range o.word {
		switch {
		case g > 0:
			word = append(word, g+b.n)
		case g < 0:
			word = append(word, g-b.n)
		default:
			word = append(word, 0)
		}
	}

	return Braid{n: b.n + o.n, word: word}
}

// ConjoinLeft places o to the left of b.
func (b Braid) ConjoinLeft(o Braid) Braid {
	return o.ConjoinRight(b)
}

// Inverse returns the braid that undoes b.
func (b Braid) Inverse() Braid {
	word := make([]int, len(b.word))
	for i, g := range b.word {
		word[len(b.word)-1-i] = -g
	}

	return Braid{n: b.n, word: word}
}

// Simplify drops identity generators and cancels adjacent inverse pairs
// until none remain.
func (b Braid) Simplify() Braid {
	word := make([]int, 0, len(b.word))
	for _, g := range b.word {
		if g == 0 {
			continue
		}
		if k := len(word); k > 0 && word[k-1] == -g {
			word = word[:k-1]
			continue
		}
		word = append(word, g)
	}

	return Braid{n: b.n, word: word}
}

// String draws the braid top to bottom, one three-line block per
// generator separated by plain rows.
func (b Braid) String() string {
	var sb strings.Builder
	plain := repeat("| ", b.n-1) + "|\n"
	sb.WriteString(plain)
	for _, g := range b.word {
		if g != 0 {
			mid := " / "
			if g < 0 {
				mid, g = " \\ ", -g
			}
			left := repeat("| ", g-1)
			right := repeat(" |", b.n-g-1) + "\n"
			sb.WriteString(left + "\\ /" + right)
			sb.WriteString(left + mid + right)
			sb.WriteString(left + "/ \\" + right)
		} else {
			sb.WriteString(plain)
		}
		sb.WriteString(plain)
	}

	return sb.String()
}

func repeat(s string, k int) string {
	if k <= 0 {
		return ""
	}

	return strings.Repeat(s, k)
}
