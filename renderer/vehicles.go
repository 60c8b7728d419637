package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/camera"
	"github.com/rranshous/raceon/entity"
)

var (
	playerBody = rl.Color{R: 66, G: 135, B: 245, A: 255}
	runnerBody = rl.Color{R: 96, G: 180, B: 86, A: 255}
	chaserBody = rl.Color{R: 205, G: 70, B: 60, A: 255}
	otherBody  = rl.Color{R: 150, G: 150, B: 150, A: 255}
	noseColor  = rl.Color{R: 240, G: 240, B: 230, A: 255}
	shadow     = rl.Color{R: 0, G: 0, B: 0, A: 70}
)

// VehicleRenderer draws vehicles as oriented rectangles with a nose marker.
type VehicleRenderer struct{}

// NewVehicleRenderer creates a vehicle renderer.
func NewVehicleRenderer() *VehicleRenderer {
	return &VehicleRenderer{}
}

// Draw renders the AI fleet and then the player on top.
func (r *VehicleRenderer) Draw(vehicles []*entity.Vehicle, player *entity.Vehicle, cam *camera.Camera) {
	for _, v := range vehicles {
		if v == nil || !v.Alive {
			continue
		}
		r.drawVehicle(v, cam)
	}
	if player != nil && player.Alive {
		r.drawVehicle(player, cam)
	}
}

func (r *VehicleRenderer) drawVehicle(v *entity.Vehicle, cam *camera.Camera) {
	if !cam.IsVisible(v.Position, v.CollisionRadius()*2) {
		return
	}

	s := cam.WorldToScreen(v.Position)
	w := float32(v.Width * cam.Zoom)
	h := float32(v.Height * cam.Zoom)

	// Body is longer than wide; +90 aligns the long axis with the heading.
	rotation := float32(v.Angle*180/math.Pi + 90)

	rl.DrawRectanglePro(
		rl.Rectangle{X: float32(s.X) + 2, Y: float32(s.Y) + 2, Width: w, Height: h},
		rl.Vector2{X: w / 2, Y: h / 2},
		rotation,
		shadow,
	)
	rl.DrawRectanglePro(
		rl.Rectangle{X: float32(s.X), Y: float32(s.Y), Width: w, Height: h},
		rl.Vector2{X: w / 2, Y: h / 2},
		rotation,
		bodyColor(v),
	)

	nose := cam.WorldToScreen(v.Front(v.Height * 0.32))
	rl.DrawCircleV(rl.Vector2{X: float32(nose.X), Y: float32(nose.Y)}, float32(2.5*cam.Zoom), noseColor)
}

func bodyColor(v *entity.Vehicle) rl.Color {
	if v.IsPlayer {
		return playerBody
	}
	switch v.Type.Behavior {
	case "runner":
		return runnerBody
	case "chaser":
		return chaserBody
	default:
		return otherBody
	}
}
