package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/rranshous/raceon/camera"
	"github.com/rranshous/raceon/effects"
	"github.com/rranshous/raceon/vec"
)

// ParticleRenderer renders effect particles and tire tracks.
type ParticleRenderer struct{}

// NewParticleRenderer creates a particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// DrawTracks renders tire marks. Call before vehicles so marks sit under
// them.
func (r *ParticleRenderer) DrawTracks(m *effects.Manager, cam *camera.Camera) {
	if m == nil {
		return
	}

	m.EachTrack(func(pos vec.Vec2, tr effects.Track) {
		if !cam.IsVisible(pos, 8) {
			return
		}

		lifeRatio := float32(tr.TTL / tr.Life)
		color := rl.Color{R: 40, G: 34, B: 26, A: uint8(lifeRatio * 110)}

		// Short segment along the heading.
		half := vec.FromAngle(tr.Angle, 5)
		a := cam.WorldToScreen(pos.Sub(half))
		b := cam.WorldToScreen(pos.Add(half))
		rl.DrawLineEx(
			rl.Vector2{X: float32(a.X), Y: float32(a.Y)},
			rl.Vector2{X: float32(b.X), Y: float32(b.Y)},
			float32(tr.Width*cam.Zoom),
			color,
		)
	})
}

// DrawParticles renders all live particles.
func (r *ParticleRenderer) DrawParticles(m *effects.Manager, cam *camera.Camera) {
	if m == nil {
		return
	}

	m.EachParticle(func(pos vec.Vec2, p effects.Particle) {
		if !cam.IsVisible(pos, p.Size*2) {
			return
		}

		lifeRatio := float32(p.TTL / p.Life)

		var color rl.Color
		switch p.Kind {
		case effects.KindSplash:
			color = rl.Color{R: 120, G: 180, B: 230, A: uint8(lifeRatio * 220)}
		case effects.KindSpark:
			color = rl.Color{R: 250, G: 200, B: 90, A: uint8(lifeRatio * 240)}
		case effects.KindDust:
			color = rl.Color{R: 140, G: 115, B: 80, A: uint8(lifeRatio * 160)}
		case effects.KindSmoke:
			color = rl.Color{R: 90, G: 90, B: 90, A: uint8(lifeRatio * 180)}
		}

		size := float32(p.Size*cam.Zoom) * lifeRatio
		if size < 0.5 {
			size = 0.5
		}

		// Smoke grows as it fades.
		if p.Kind == effects.KindSmoke {
			size = float32(p.Size*cam.Zoom) * (0.6 + 0.8*(1-lifeRatio))
		}

		s := cam.WorldToScreen(pos)
		rl.DrawCircleV(rl.Vector2{X: float32(s.X), Y: float32(s.Y)}, size, color)
	})
}
