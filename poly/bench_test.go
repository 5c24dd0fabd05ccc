package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvknot/poly"
)

func BenchmarkAdd_MixedRoots(b *testing.B) {
	p := poly.MustNew(2, -7, 1, -1, 2, 0, 3, -5, 8, 1)
	q := poly.MustNew(3, 4, -2, 4, 0, 0, 1, 9)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Add(q)
	}
}

func BenchmarkShiftPower(b *testing.B) {
	p := poly.MustNew(2, -7, 1, -1, 2, 0, 3, -5, 8, 1)
	f := poly.Frac(3, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.ShiftPower(f)
	}
}
