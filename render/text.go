package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvknot/diagram"
)

// Text lists d one element per line: a summary header, then every crossing
// and every strand with its index.
func Text(d diagram.Diagram) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "crossings=%d strands=%d writhe=%d singular=%d\n",
		d.NumCrossings(), d.NumStrands(), d.Writhe(), d.NumSingular())
	for i := 0; i < d.NumCrossings(); i++ {
		fmt.Fprintf(&sb, "crossing %d %s\n", i, d.Crossing(i))
	}
	for i := 0; i < d.NumStrands(); i++ {
		fmt.Fprintf(&sb, "strand %d %s\n", i, d.Strand(i))
	}

	return sb.String()
}
