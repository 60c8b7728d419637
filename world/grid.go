package world

import (
	"math"

	"github.com/rranshous/raceon/vec"
)

const (
	// AvoidCellSize is the avoidance grid resolution in world units.
	AvoidCellSize = 32.0
	// avoidFlagDistance marks cells whose nearest hazard edge is closer
	// than this.
	avoidFlagDistance = 100.0
	// hazardZoneSlowdown is the friction factor below which a zone counts
	// as a hazard worth steering around. Milder mud is driven through.
	hazardZoneSlowdown = 0.8
)

type avoidCell struct {
	flagged bool
	// dir points from the nearest hazard toward the cell, the direction a
	// vehicle should steer.
	dir vec.Vec2
	// distance is from the cell center to the nearest hazard edge.
	distance float64
}

type avoidanceGrid struct {
	cols  int
	rows  int
	cells []avoidCell
}

// BuildAvoidanceGrid precomputes steer-away vectors for every grid cell from
// the current obstacle and zone set. Call once after terrain is placed;
// queries afterward are a single array lookup.
func (w *World) BuildAvoidanceGrid() {
	cols := int(math.Ceil(w.Width / AvoidCellSize))
	rows := int(math.Ceil(w.Height / AvoidCellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	hazards := w.hazards()
	g := &avoidanceGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]avoidCell, cols*rows),
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := vec.New(
				(float64(col)+0.5)*AvoidCellSize,
				(float64(row)+0.5)*AvoidCellSize,
			)

			nearest := math.Inf(1)
			var dir vec.Vec2
			for _, h := range hazards {
				edge := center.Distance(h.Position) - h.Radius
				if edge < nearest {
					nearest = edge
					dir = center.Sub(h.Position).Normalize()
				}
			}

			cell := &g.cells[row*cols+col]
			cell.distance = nearest
			if nearest < avoidFlagDistance {
				cell.flagged = true
				cell.dir = dir
			}
		}
	}

	w.grid = g
}

// hazards collects everything the AI should steer around: all water, all
// rocks, and zones sticky enough to be worth dodging.
func (w *World) hazards() []Obstacle {
	out := make([]Obstacle, 0, len(w.water)+len(w.rocks)+len(w.zones))
	out = append(out, w.water...)
	out = append(out, w.rocks...)
	for _, z := range w.zones {
		if z.Slowdown < hazardZoneSlowdown {
			out = append(out, Obstacle{Position: z.Position, Radius: z.Radius})
		}
	}
	return out
}

// AvoidanceAt returns the steer-away direction for the cell containing pos.
// Returns false for unflagged cells, positions outside the world, or a world
// whose grid was never built.
func (w *World) AvoidanceAt(pos vec.Vec2) (vec.Vec2, bool) {
	if w.grid == nil {
		return vec.Vec2{}, false
	}
	col := int(math.Floor(pos.X / AvoidCellSize))
	row := int(math.Floor(pos.Y / AvoidCellSize))
	if col < 0 || col >= w.grid.cols || row < 0 || row >= w.grid.rows {
		return vec.Vec2{}, false
	}
	cell := w.grid.cells[row*w.grid.cols+col]
	if !cell.flagged {
		return vec.Vec2{}, false
	}
	return cell.dir, true
}

// EachAvoidanceCell visits every flagged cell with its center, steer
// direction, and hazard edge distance. Used by the debug overlay.
func (w *World) EachAvoidanceCell(fn func(center, dir vec.Vec2, distance float64)) {
	if w.grid == nil {
		return
	}
	for row := 0; row < w.grid.rows; row++ {
		for col := 0; col < w.grid.cols; col++ {
			cell := w.grid.cells[row*w.grid.cols+col]
			if !cell.flagged {
				continue
			}
			center := vec.New(
				(float64(col)+0.5)*AvoidCellSize,
				(float64(row)+0.5)*AvoidCellSize,
			)
			fn(center, cell.dir, cell.distance)
		}
	}
}
