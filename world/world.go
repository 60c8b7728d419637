// Package world owns the static terrain vehicles drive through: water and
// rock obstacles that stop movement, mud zones that drag on it, named spawn
// anchors, and the precomputed grid the AI steers around hazards with.
package world

import "github.com/rranshous/raceon/vec"

// Obstacle is a solid circular feature. Vehicles bounce off rather than
// enter.
type Obstacle struct {
	Position vec.Vec2
	Radius   float64
}

// Zone is a circular terrain patch with a friction factor. Slowdown is in
// (0, 1]; lower values drag harder. Zones overlap by stacking in insertion
// order, first match wins.
type Zone struct {
	Position vec.Vec2
	Radius   float64
	Slowdown float64
}

// World is the static playfield. Built once at startup and read-only during
// simulation, so queries need no locking.
type World struct {
	Width  float64
	Height float64

	water   []Obstacle
	rocks   []Obstacle
	zones   []Zone
	anchors map[string][]vec.Vec2
	grid    *avoidanceGrid
}

// New returns an empty world with the given dimensions.
func New(width, height float64) *World {
	return &World{
		Width:   width,
		Height:  height,
		anchors: make(map[string][]vec.Vec2),
	}
}

// AddWater places a water obstacle.
func (w *World) AddWater(pos vec.Vec2, radius float64) {
	w.water = append(w.water, Obstacle{Position: pos, Radius: radius})
}

// AddRock places a rock obstacle.
func (w *World) AddRock(pos vec.Vec2, radius float64) {
	w.rocks = append(w.rocks, Obstacle{Position: pos, Radius: radius})
}

// AddZone places a friction zone.
func (w *World) AddZone(pos vec.Vec2, radius, slowdown float64) {
	w.zones = append(w.zones, Zone{Position: pos, Radius: radius, Slowdown: slowdown})
}

// AddAnchor registers a named spawn anchor point. Multiple anchors may share
// a name; spawners pick among them.
func (w *World) AddAnchor(name string, pos vec.Vec2) {
	w.anchors[name] = append(w.anchors[name], pos)
}

// Anchors returns every anchor registered under name.
func (w *World) Anchors(name string) []vec.Vec2 {
	return w.anchors[name]
}

// Water returns the water obstacles in insertion order.
func (w *World) Water() []Obstacle {
	return w.water
}

// Rocks returns the rock obstacles in insertion order.
func (w *World) Rocks() []Obstacle {
	return w.rocks
}

// Zones returns the friction zones in insertion order.
func (w *World) Zones() []Zone {
	return w.zones
}

// FirstWaterHit returns the first water obstacle (insertion order) whose
// circle intersects the circle at pos with the given radius.
func (w *World) FirstWaterHit(pos vec.Vec2, radius float64) (Obstacle, bool) {
	return firstHit(w.water, pos, radius)
}

// FirstRockHit is FirstWaterHit for rocks.
func (w *World) FirstRockHit(pos vec.Vec2, radius float64) (Obstacle, bool) {
	return firstHit(w.rocks, pos, radius)
}

func firstHit(obstacles []Obstacle, pos vec.Vec2, radius float64) (Obstacle, bool) {
	for _, o := range obstacles {
		reach := radius + o.Radius
		if pos.DistanceSq(o.Position) < reach*reach {
			return o, true
		}
	}
	return Obstacle{}, false
}

// FrictionAt returns the friction factor of the first zone containing pos,
// or 1 on open ground.
func (w *World) FrictionAt(pos vec.Vec2) float64 {
	for _, z := range w.zones {
		if pos.DistanceSq(z.Position) < z.Radius*z.Radius {
			return z.Slowdown
		}
	}
	return 1
}

// Contains reports whether pos lies inside the world bounds.
func (w *World) Contains(pos vec.Vec2) bool {
	return pos.X >= 0 && pos.X <= w.Width && pos.Y >= 0 && pos.Y <= w.Height
}
