package ols

import (
	"fmt"
	"math/rand"
	"testing"

	"unitroot/timeSeries/pseudo"
)

func BenchmarkRegression(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		rng := rand.New(rand.NewSource(42))
		x, y := pseudo.GenAffineDataWithNoise(rng, n, 4.0, 12.0)
		x = AddConstantColumn(x)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := Regression(y, x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSummarize(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	x, y := pseudo.GenAffineDataWithNoise(rng, 1000, 4.0, 12.0)
	x = AddConstantColumn(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Summarize(y, x); err != nil {
			b.Fatal(err)
		}
	}
}
