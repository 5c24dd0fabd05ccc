package braid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/braid"
	"github.com/katalvlaran/lvknot/jones"
	"github.com/katalvlaran/lvknot/poly"
)

func TestNew(t *testing.T) {
	b, err := braid.New(3, 1, -2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Strands())
	assert.Equal(t, []int{1, -2, 0}, b.Word())

	_, err = braid.New(3, 3)
	assert.ErrorIs(t, err, braid.ErrBadGenerator)
	_, err = braid.New(3, -3)
	assert.ErrorIs(t, err, braid.ErrBadGenerator)
	_, err = braid.New(-1)
	assert.ErrorIs(t, err, braid.ErrNegativeStrands)
	assert.Panics(t, func() { braid.Identity(-2) })

	id := braid.Identity(4)
	assert.Equal(t, 4, id.Strands())
	assert.Empty(t, id.Word())
}

func TestStacking(t *testing.T) {
	a := braid.MustNew(3, 1, 2)
	b := braid.MustNew(3, -1)

	under, err := a.StackUnder(b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, -1}, under.Word())

	over, err := a.StackOver(b)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 1, 2}, over.Word())

	_, err = a.StackUnder(braid.Identity(2))
	assert.ErrorIs(t, err, braid.ErrIncompatibleStacking)
	_, err = a.StackOver(braid.Identity(4))
	assert.ErrorIs(t, err, braid.ErrIncompatibleStacking)
}

func TestConjoin(t *testing.T) {
	a := braid.MustNew(2, 1, -1)
	b := braid.MustNew(3, 2, 0, -1)

	right := a.ConjoinRight(b)
	assert.Equal(t, 5, right.Strands())
	assert.Equal(t, []int{1, -1, 4, 0, -3}, right.Word())

	left := a.ConjoinLeft(b)
	assert.Equal(t, 5, left.Strands())
	assert.Equal(t, []int{2, 0, -1, 4, -4}, left.Word())
}

func TestInverseAndSimplify(t *testing.T) {
	b := braid.MustNew(4, 1, 0, 3, -2)
	inv := b.Inverse()
	assert.Equal(t, []int{2, -3, 0, -1}, inv.Word())

	both, err := b.StackUnder(inv)
	require.NoError(t, err)
	assert.Empty(t, both.Simplify().Word())

	assert.Equal(t, []int{1, 2}, braid.MustNew(3, 1, 0, 2, -1, 1).Simplify().Word())
	assert.Equal(t, []int{2}, braid.MustNew(3, 1, 2, -2, 2, -2, -1, 2).Simplify().Word())
}

func TestString(t *testing.T) {
	b := braid.MustNew(2, 1)
	assert.Equal(t, "| |\n\\ /\n / \n/ \\\n| |\n", b.String())

	b = braid.MustNew(3, -2, 0)
	want := "| | |\n" +
		"| \\ /\n" +
		"|  \\ \n" +
		"| / \\\n" +
		"| | |\n" +
		"| | |\n" +
		"| | |\n"
	assert.Equal(t, want, b.String())

	assert.Equal(t, "|\n", braid.Identity(0).String())
}

func TestClosure_Shapes(t *testing.T) {
	d, err := braid.MustNew(2, 1).Closure()
	require.NoError(t, err)
	assert.Equal(t, 1, d.NumCrossings())
	assert.Equal(t, 2, d.NumStrands())

	d, err = braid.Identity(3).Closure()
	require.NoError(t, err)
	assert.Zero(t, d.NumCrossings())
	require.Equal(t, 3, d.NumStrands())
	for i := 0; i < 3; i++ {
		assert.True(t, d.Strand(i).IsLoop())
	}

	d, err = braid.MustNew(3, 1, -2, 1, -2).Closure()
	require.NoError(t, err)
	assert.Equal(t, 4, d.NumCrossings())
	assert.Equal(t, 0, d.Writhe())
	comps, err := d.Components()
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestClosure_Jones(t *testing.T) {
	tests := []struct {
		name string
		b    braid.Braid
		want poly.Polynomial
	}{
		{"unknot", braid.MustNew(2, 1), poly.One()},
		{"hopf", braid.MustNew(2, 1, 1), poly.MustNew(2, 1, -1, 0, 0, 0, -1)},
		{"trefoil", braid.MustNew(2, 1, 1, 1), poly.MustNew(1, 1, 1, 0, 1, -1)},
		{"mirror trefoil", braid.MustNew(2, -1, -1, -1), poly.MustNew(1, -4, -1, 1, 0, 1)},
		{"figure eight", braid.MustNew(3, 1, -2, 1, -2), poly.MustNew(1, -2, 1, -1, 1, -1, 1)},
		{"three-strand unlink", braid.Identity(3), poly.MustNew(1, -1, 1, 2, 1)},
		{"untouched strand", braid.MustNew(3, 1), poly.MustNew(2, -1, -1, 0, -1)},
		{"stabilised", braid.MustNew(3, 1, 2), poly.One()},
		{"cancelled", braid.MustNew(2, 1, 1, 1, -1, -1, -1), poly.MustNew(2, -1, -1, 0, -1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.b.Closure()
			require.NoError(t, err)
			got, err := jones.Polynomial(d)
			require.NoError(t, err)
			assert.Truef(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}
