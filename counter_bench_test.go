package countish_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/keilerkonzept/countish"
)

var (
	supports        = []float64{0.01, 0.001}
	errorTolerances = []float64{0.005, 0.0005}
	benchItems      = generateItems(1_000_000)
)

func generateItems(n int) []string {
	items := make([]string, n)
	for i := 0; i < n; i++ {
		items[i] = fmt.Sprintf("item%d", i)
	}
	return items
}

// BenchmarkNaiveObserve benchmarks the Observe method of Naive.
func BenchmarkNaiveObserve(b *testing.B) {
	counter := countish.NewNaive()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		counter.Observe(benchItems[rand.IntN(len(benchItems))])
	}
}

// BenchmarkLossyObserve benchmarks the Observe method of Lossy.
func BenchmarkLossyObserve(b *testing.B) {
	for _, support := range supports {
		for _, errorTolerance := range errorTolerances {
			if errorTolerance >= support {
				continue
			}
			b.Run(fmt.Sprintf("Support=%v_ErrorTolerance=%v", support, errorTolerance), func(b *testing.B) {
				counter, err := countish.NewLossy(support, errorTolerance)
				if err != nil {
					b.Fatal(err)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					counter.Observe(benchItems[rand.IntN(len(benchItems))])
				}
			})
		}
	}
}

// BenchmarkStickyObserve benchmarks the Observe method of Sticky.
func BenchmarkStickyObserve(b *testing.B) {
	for _, support := range supports {
		for _, errorTolerance := range errorTolerances {
			if errorTolerance >= support {
				continue
			}
			b.Run(fmt.Sprintf("Support=%v_ErrorTolerance=%v", support, errorTolerance), func(b *testing.B) {
				counter, err := countish.NewSticky(support, errorTolerance, 0.01)
				if err != nil {
					b.Fatal(err)
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					counter.Observe(benchItems[rand.IntN(len(benchItems))])
				}
			})
		}
	}
}

// BenchmarkLossyItemsAboveThreshold benchmarks queries over a filled sketch.
func BenchmarkLossyItemsAboveThreshold(b *testing.B) {
	for _, support := range supports {
		for _, errorTolerance := range errorTolerances {
			if errorTolerance >= support {
				continue
			}
			b.Run(fmt.Sprintf("Support=%v_ErrorTolerance=%v", support, errorTolerance), func(b *testing.B) {
				counter, err := countish.NewLossy(support, errorTolerance)
				if err != nil {
					b.Fatal(err)
				}
				for i := 0; i < len(benchItems); i++ {
					counter.Observe(benchItems[rand.IntN(len(benchItems))])
				}

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := counter.ItemsAboveThreshold(support); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
