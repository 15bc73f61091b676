package strassen_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/ring"
	"github.com/katalvlaran/strassen/strassen"
)

var sinkM *matrix.Dense

func BenchmarkMultiplySeq(b *testing.B) {
	r := ring.MustNew(1_000_000_007)
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y, err := matrix.RandomPair(r, n, 7)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := strassen.MultiplySeq(x, y, r)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
