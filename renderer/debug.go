package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/camera"
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

var (
	avoidArrow   = rl.Color{R: 255, G: 220, B: 80, A: 140}
	radiusCircle = rl.Color{R: 255, G: 255, B: 255, A: 120}
	targetLine   = rl.Color{R: 80, G: 220, B: 255, A: 120}
	avoidLine    = rl.Color{R: 255, G: 120, B: 80, A: 170}
)

// DebugRenderer draws AI internals: avoidance vectors, collision radii,
// and steering targets.
type DebugRenderer struct{}

// NewDebugRenderer creates a debug overlay renderer.
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// DrawAvoidanceGrid renders an arrow for every flagged avoidance cell in
// view.
func (r *DebugRenderer) DrawAvoidanceGrid(w *world.World, cam *camera.Camera) {
	if w == nil {
		return
	}

	w.EachAvoidanceCell(func(center, dir vec.Vec2, distance float64) {
		if !cam.IsVisible(center, world.AvoidCellSize) {
			return
		}

		a := cam.WorldToScreen(center)
		b := cam.WorldToScreen(center.Add(dir.Scale(world.AvoidCellSize * 0.4)))
		rl.DrawLineEx(
			rl.Vector2{X: float32(a.X), Y: float32(a.Y)},
			rl.Vector2{X: float32(b.X), Y: float32(b.Y)},
			1,
			avoidArrow,
		)
		rl.DrawCircleV(rl.Vector2{X: float32(b.X), Y: float32(b.Y)}, 1.5, avoidArrow)
	})
}

// DrawVehicleDebug renders collision circles and steering state for every
// live vehicle.
func (r *DebugRenderer) DrawVehicleDebug(vehicles []*entity.Vehicle, player *entity.Vehicle, cam *camera.Camera) {
	for _, v := range vehicles {
		if v == nil || !v.Alive {
			continue
		}
		r.drawOne(v, cam)
	}
	if player != nil && player.Alive {
		r.drawOne(player, cam)
	}
}

func (r *DebugRenderer) drawOne(v *entity.Vehicle, cam *camera.Camera) {
	if !cam.IsVisible(v.Position, v.CollisionRadius()*2) {
		return
	}

	s := cam.WorldToScreen(v.Position)
	rl.DrawCircleLines(int32(s.X), int32(s.Y), float32(v.CollisionRadius()*cam.Zoom), radiusCircle)

	if v.Steering.HasTarget {
		tg := cam.WorldToScreen(v.Steering.Target)
		rl.DrawLineEx(
			rl.Vector2{X: float32(s.X), Y: float32(s.Y)},
			rl.Vector2{X: float32(tg.X), Y: float32(tg.Y)},
			1,
			targetLine,
		)
	}

	if v.Steering.Avoiding {
		av := cam.WorldToScreen(v.Position.Add(v.Steering.Avoid.Scale(40)))
		rl.DrawLineEx(
			rl.Vector2{X: float32(s.X), Y: float32(s.Y)},
			rl.Vector2{X: float32(av.X), Y: float32(av.Y)},
			2,
			avoidLine,
		)
	}
}
