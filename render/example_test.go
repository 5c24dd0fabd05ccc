package render_test

import (
	"fmt"

	"github.com/katalvlaran/lvknot/atlas"
	"github.com/katalvlaran/lvknot/render"
)

// ExampleMermaid prints the Hopf link as a Mermaid flowchart.
func ExampleMermaid() {
	fmt.Print(render.Mermaid(atlas.Hopf()))
	// Output:
	// graph TD
	//   C0["0: X+"]
	//   C1["1: X+"]
	//   C0 -->|0| C1
	//   C1 -->|1| C0
	//   C0 -->|2| C1
	//   C1 -->|3| C0
}
