package physics

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/tomz197/rocket/internal/geometry"
)

// overlaps is the pairwise test the grid must agree with: a bullet against an enemy.
func overlaps(a, b geometry.Point) bool {
	return a.SquaredDistanceTo(b) < 13*13
}

func TestGridMatchesBruteForce(t *testing.T) {
	size := geometry.NewSize(1024, 600)
	const radius = 13.0
	grid := NewSpatialGrid(size, radius)
	rng := rand.New(rand.NewPCG(7, 7))

	items := make([]geometry.Point, 300)
	for i := range items {
		// Some items fall slightly outside the world on purpose.
		items[i] = geometry.Point{X: rng.Float64()*1100 - 40, Y: rng.Float64()*680 - 40}
		grid.Insert(items[i], i)
	}

	for q := 0; q < 200; q++ {
		query := geometry.Point{X: rng.Float64()*1100 - 40, Y: rng.Float64()*680 - 40}

		var want []int
		for i, p := range items {
			if overlaps(query, p) {
				want = append(want, i)
			}
		}

		var got []int
		grid.QueryAround(query, func(i int) bool {
			if overlaps(query, items[i]) {
				got = append(got, i)
			}
			return false
		})
		sort.Ints(got)

		if len(got) != len(want) {
			t.Fatalf("query %v: grid found %v, brute force found %v", query, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("query %v: grid found %v, brute force found %v", query, got, want)
			}
		}
	}
}

func TestGridClearAndEarlyStop(t *testing.T) {
	grid := NewSpatialGrid(geometry.NewSize(100, 100), 10)
	for i := 0; i < 5; i++ {
		grid.Insert(geometry.Point{X: 55, Y: 55}, i)
	}

	calls := 0
	grid.QueryAround(geometry.Point{X: 50, Y: 50}, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Fatalf("expected iteration to stop after first item, got %d calls", calls)
	}

	grid.Clear()
	grid.QueryAround(geometry.Point{X: 50, Y: 50}, func(int) bool {
		t.Fatalf("grid should be empty after Clear")
		return false
	})
}
