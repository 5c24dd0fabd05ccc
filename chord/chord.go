// SPDX-License-Identifier: MIT
// Package: lvknot/chord
//
// chord.go — the Chord value and word validation.

package chord

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyWord indicates a word with no letters.
	ErrEmptyWord = errors.New("chord: empty word")

	// ErrLabelOutOfRange indicates a label outside [0, len(word)/2).
	ErrLabelOutOfRange = errors.New("chord: label out of range")

	// ErrBadMultiplicity indicates a label that does not occur exactly twice.
	ErrBadMultiplicity = errors.New("chord: label must occur exactly twice")

	// ErrAdjacentRepeat indicates two equal neighbouring letters, counting
	// the last and first letters as neighbours.
	ErrAdjacentRepeat = errors.New("chord: adjacent letters are equal")
)

// Chord is a Gauss word: each label marks the two points of the circle
// joined by one chord. The zero value is the degenerate chord.
type Chord struct {
	word []int
}

// Validate reports the first rule word violates, or nil.
func Validate(word []int) error {
	n := len(word)
	if n == 0 {
		return ErrEmptyWord
	}
	counts := make([]int, n/2)
	for i, a := range word {
		if a < 0 || a >= n/2 {
			return fmt.Errorf("%w: position %d has label %d, want [0,%d)", ErrLabelOutOfRange, i, a, n/2)
		}
		counts[a]++
	}
	for a, c := range counts {
		if c != 2 {
			return fmt.Errorf("%w: label %d occurs %d times", ErrBadMultiplicity, a, c)
		}
	}
	for i := range word {
		if word[i] == word[(i+1)%n] {
			return fmt.Errorf("%w: positions %d and %d carry label %d", ErrAdjacentRepeat, i, (i+1)%n, word[i])
		}
	}

	return nil
}

// New returns the chord for word. Words that fail Validate produce the
// degenerate chord rather than an error. word is copied.
func New(word []int) Chord {
	if Validate(word) != nil {
		return Chord{}
	}

	return Chord{word: append([]int(nil), word...)}
}

// IsDegenerate reports whether c came from an invalid word.
func (c Chord) IsDegenerate() bool { return len(c.word) == 0 }

// Word returns a copy of the Gauss word; nil for a degenerate chord.
func (c Chord) Word() []int {
	if c.IsDegenerate() {
		return nil
	}

	return append([]int(nil), c.word...)
}

// Len returns the number of chords.
func (c Chord) Len() int { return len(c.word) / 2 }

func (c Chord) String() string {
	if c.IsDegenerate() {
		return "chord(degenerate)"
	}

	return fmt.Sprintf("chord%v", c.word)
}
