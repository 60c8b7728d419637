package physics

import (
	"math"
	"testing"

	"github.com/rranshous/raceon/vec"
)

func TestOverlap(t *testing.T) {
	// Both trucks have collision radius 10.
	tests := []struct {
		name string
		aPos vec.Vec2
		bPos vec.Vec2
		want bool
	}{
		{"overlapping", vec.New(0, 0), vec.New(15, 0), true},
		{"touching exactly", vec.New(0, 0), vec.New(20, 0), false},
		{"clear", vec.New(0, 0), vec.New(30, 0), false},
		{"coincident", vec.New(5, 5), vec.New(5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := spawnTruck(tt.aPos, 0, 0)
			b := spawnTruck(tt.bPos, 0, 0)
			if got := Overlap(a, b); got != tt.want {
				t.Errorf("Overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRamWinner(t *testing.T) {
	const (
		frontOffset = 15.0
		tolerance   = 2.0
	)

	t.Run("nose into broadside", func(t *testing.T) {
		// a faces b; b faces perpendicular. a's front point is 3 from b's
		// center, b's front point is sqrt(18^2+15^2) ~ 23.4 from a's.
		a := spawnTruck(vec.New(0, 0), 0, 100)
		b := spawnTruck(vec.New(18, 0), math.Pi/2, 100)

		if got := RamWinner(a, b, frontOffset, tolerance); got != a {
			t.Errorf("winner = %v, want the nose-on vehicle", got)
		}
		if got := RamWinner(b, a, frontOffset, tolerance); got != a {
			t.Errorf("winner order-swapped = %v, want the nose-on vehicle", got)
		}
	})

	t.Run("head-on is a toss-up", func(t *testing.T) {
		a := spawnTruck(vec.New(0, 0), 0, 100)
		b := spawnTruck(vec.New(18, 0), math.Pi, 100)

		if got := RamWinner(a, b, frontOffset, tolerance); got != nil {
			t.Errorf("winner = %v, want nil on symmetric head-on", got)
		}
	})

	t.Run("within tolerance is a toss-up", func(t *testing.T) {
		// Front distances differ by ~1.5, under the 2.0 tolerance.
		a := spawnTruck(vec.New(0, 0), 0, 100)
		b := spawnTruck(vec.New(18, 0), math.Pi-0.2, 100)

		if got := RamWinner(a, b, frontOffset, tolerance); got != nil {
			t.Errorf("winner = %v, want nil inside tolerance", got)
		}
	})

	t.Run("rear-ended from behind", func(t *testing.T) {
		// b drives into the back of a; both face +X.
		a := spawnTruck(vec.New(18, 0), 0, 100)
		b := spawnTruck(vec.New(0, 0), 0, 100)

		if got := RamWinner(a, b, frontOffset, tolerance); got != b {
			t.Errorf("winner = %v, want the rammer", got)
		}
	})
}
