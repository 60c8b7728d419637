package world

import (
	"math"
	"testing"

	"github.com/rranshous/raceon/vec"
)

func TestAvoidanceAtFlagsNearHazards(t *testing.T) {
	w := New(640, 640)
	w.AddRock(vec.New(320, 320), 20)
	w.BuildAvoidanceGrid()

	// Right beside the rock: flagged, steering away in +X.
	dir, ok := w.AvoidanceAt(vec.New(400, 320))
	if !ok {
		t.Fatal("cell near rock not flagged")
	}
	if dir.X <= 0 || math.Abs(dir.Y) > 0.2 {
		t.Errorf("steer direction = %v, want roughly +X away from rock", dir)
	}
	if math.Abs(dir.Length()-1) > 1e-9 {
		t.Errorf("steer direction length = %v, want unit", dir.Length())
	}

	// Far corner: edge distance well past the flag threshold.
	if _, ok := w.AvoidanceAt(vec.New(16, 16)); ok {
		t.Error("far cell flagged")
	}
}

func TestAvoidanceAtOutOfBounds(t *testing.T) {
	w := New(320, 320)
	w.AddRock(vec.New(160, 160), 30)
	w.BuildAvoidanceGrid()

	for _, pos := range []vec.Vec2{
		vec.New(-5, 160),
		vec.New(160, -5),
		vec.New(325, 160),
		vec.New(160, 325),
	} {
		if _, ok := w.AvoidanceAt(pos); ok {
			t.Errorf("AvoidanceAt(%v) flagged outside the world", pos)
		}
	}
}

func TestAvoidanceAtWithoutBuild(t *testing.T) {
	w := New(320, 320)
	w.AddRock(vec.New(160, 160), 30)

	if _, ok := w.AvoidanceAt(vec.New(160, 200)); ok {
		t.Error("AvoidanceAt returned a hit before BuildAvoidanceGrid")
	}
}

func TestMildZonesAreNotHazards(t *testing.T) {
	w := New(640, 640)
	w.AddZone(vec.New(320, 320), 40, 0.85)
	w.BuildAvoidanceGrid()

	if _, ok := w.AvoidanceAt(vec.New(320, 380)); ok {
		t.Error("mild zone flagged cells")
	}

	sticky := New(640, 640)
	sticky.AddZone(vec.New(320, 320), 40, 0.5)
	sticky.BuildAvoidanceGrid()

	if _, ok := sticky.AvoidanceAt(vec.New(320, 380)); !ok {
		t.Error("sticky zone did not flag cells")
	}
}

// TestGridMatchesBruteForce cross-checks the precomputed grid against a
// direct nearest-hazard scan at every cell center.
func TestGridMatchesBruteForce(t *testing.T) {
	w := New(800, 600)
	w.AddWater(vec.New(150, 120), 40)
	w.AddRock(vec.New(600, 400), 25)
	w.AddRock(vec.New(420, 90), 15)
	w.AddZone(vec.New(300, 500), 60, 0.5)
	w.AddZone(vec.New(700, 100), 60, 0.9)
	w.BuildAvoidanceGrid()

	hazards := []Obstacle{
		{Position: vec.New(150, 120), Radius: 40},
		{Position: vec.New(600, 400), Radius: 25},
		{Position: vec.New(420, 90), Radius: 15},
		{Position: vec.New(300, 500), Radius: 60},
	}

	cols := int(math.Ceil(w.Width / AvoidCellSize))
	rows := int(math.Ceil(w.Height / AvoidCellSize))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := vec.New(
				(float64(col)+0.5)*AvoidCellSize,
				(float64(row)+0.5)*AvoidCellSize,
			)

			nearest := math.Inf(1)
			var wantDir vec.Vec2
			for _, h := range hazards {
				edge := center.Distance(h.Position) - h.Radius
				if edge < nearest {
					nearest = edge
					wantDir = center.Sub(h.Position).Normalize()
				}
			}

			gotDir, gotFlagged := w.AvoidanceAt(center)
			wantFlagged := nearest < 100
			if gotFlagged != wantFlagged {
				t.Fatalf("cell (%d,%d): flagged = %v, want %v", col, row, gotFlagged, wantFlagged)
			}
			if gotFlagged && (math.Abs(gotDir.X-wantDir.X) > 1e-9 || math.Abs(gotDir.Y-wantDir.Y) > 1e-9) {
				t.Fatalf("cell (%d,%d): dir = %v, want %v", col, row, gotDir, wantDir)
			}
		}
	}
}

func TestEachAvoidanceCell(t *testing.T) {
	w := New(320, 320)
	w.AddRock(vec.New(160, 160), 30)
	w.BuildAvoidanceGrid()

	count := 0
	w.EachAvoidanceCell(func(center, dir vec.Vec2, distance float64) {
		count++
		if distance >= 100 {
			t.Errorf("visited cell with edge distance %v", distance)
		}
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Errorf("cell dir not unit: %v", dir)
		}
	})
	if count == 0 {
		t.Error("no flagged cells visited")
	}
}
