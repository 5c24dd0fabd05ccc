package braid

import "github.com/katalvlaran/lvknot/diagram"

// Closure joins the bottom of every strand to its top and returns the
// resulting link diagram. Crossing k is the k-th non-identity generator;
// strand p (p < n) is the one that re-enters the top of position p, and a
// position no generator touches becomes a free loop.
func (b Braid) Closure() (diagram.Diagram, error) {
	var word []int
	for _, g := range b.word {
		if g != 0 {
			word = append(word, g)
		}
	}

	// last[p] is the final crossing on position p, or -1.
	last := make([]int, b.n)
	for p := range last {
		last[p] = -1
	}
	for c, g := range word {
		a := abs(g) - 1
		last[a], last[a+1] = c, c
	}

	ends := make([][2]int, b.n)
	cur := make([]int, b.n)
	for p := range cur {
		ends[p] = [2]int{-1, -1}
		cur[p] = p
	}
	// leave starts the strand that exits crossing c into position q.
	leave := func(c, q int) int {
		if last[q] == c {
			ends[q][0] = c
			return q
		}
		ends = append(ends, [2]int{c, -1})

		return len(ends) - 1
	}

	crossings := make([]diagram.Crossing, 0, len(word))
	for c, g := range word {
		a := abs(g) - 1
		left, right := cur[a], cur[a+1]
		ends[left][1], ends[right][1] = c, c
		leftOut := leave(c, a+1)
		rightOut := leave(c, a)

		if g > 0 {
			crossings = append(crossings, diagram.Transverse{
				OutUnder: rightOut, OutOver: leftOut, InUnder: right, InOver: left, Positive: true,
			})
		} else {
			crossings = append(crossings, diagram.Transverse{
				OutUnder: leftOut, OutOver: rightOut, InUnder: left, InOver: right, Positive: false,
			})
		}
		cur[a], cur[a+1] = rightOut, leftOut
	}

	strands := make([]diagram.Strand, len(ends))
	for i, e := range ends {
		if i < b.n && last[i] < 0 {
			strands[i] = diagram.FreeLoop()
			continue
		}
		strands[i] = diagram.Arc(e[0], e[1])
	}

	return diagram.New(crossings, strands)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
