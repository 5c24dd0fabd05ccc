package braid_test

import (
	"testing"

	"github.com/katalvlaran/lvknot/braid"
)

func BenchmarkClosure(b *testing.B) {
	br := braid.MustNew(4, 1, -2, 3, 1, -2, 3, 1, -2, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = br.Closure()
	}
}

func BenchmarkSimplify(b *testing.B) {
	word := make([]int, 0, 1024)
	for i := 0; i < 512; i++ {
		word = append(word, 1+i%3, -(1 + i%3))
	}
	br := braid.MustNew(4, word...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = br.Simplify()
	}
}
