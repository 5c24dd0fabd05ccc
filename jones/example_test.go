package jones_test

import (
	"fmt"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/jones"
)

func ExamplePolynomial() {
	p, err := jones.Polynomial(atlas.Trefoil())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)

	p, _ = jones.Polynomial(atlas.TwoChord())
	fmt.Println(p)
	// Output:
	// t + t^3 - t^4
	// -1 + t + t^3 - t^4
}
