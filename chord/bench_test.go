package chord_test

import (
	"testing"

	"github.com/katalvlaran/lvknot/chord"
)

func BenchmarkToDiagram_FourChords(b *testing.B) {
	c := chord.New([]int{0, 1, 2, 3, 0, 1, 2, 3})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.ToDiagram()
	}
}
