package itinerary_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/katalvlaran/itinera/datagen"
	"github.com/katalvlaran/itinera/itinerary"
)

// benchmarkBuild measures one full sweep over n random flights spread over
// 30 days and 40 airports, for the given strategy.
//
// Complexity: Indexed is O(N log N + connections), Naive is O(N²); the gap
// widens with n.
func benchmarkBuild(b *testing.B, n int, st itinerary.Strategy) {
	airports := make([]string, 40)
	for i := range airports {
		airports[i] = fmt.Sprintf("A%02d", i)
	}

	// 1. Generate the schedule once, outside the timer.
	recs, err := datagen.Random(n,
		datagen.WithAirports(airports...),
		datagen.WithSpan(30*24*time.Hour),
	)
	if err != nil {
		b.Fatal(err)
	}

	// 2. Build b.N times.
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = itinerary.Build(recs, itinerary.WithStrategy(st)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Indexed1000(b *testing.B) { benchmarkBuild(b, 1000, itinerary.Indexed) }
func BenchmarkBuild_Naive1000(b *testing.B)   { benchmarkBuild(b, 1000, itinerary.Naive) }
func BenchmarkBuild_Indexed5000(b *testing.B) { benchmarkBuild(b, 5000, itinerary.Indexed) }
func BenchmarkBuild_Naive5000(b *testing.B)   { benchmarkBuild(b, 5000, itinerary.Naive) }

// BenchmarkBuild_Replicated mirrors the moredata workflow: one day of
// traffic repeated over two weeks.
func BenchmarkBuild_Replicated(b *testing.B) {
	day, err := datagen.Random(40, datagen.WithSpan(24*time.Hour))
	if err != nil {
		b.Fatal(err)
	}
	recs, err := datagen.Replicate(day, 14)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = itinerary.Build(recs); err != nil {
			b.Fatal(err)
		}
	}
}
