package effects

import (
	"math"

	"github.com/rranshous/raceon/vec"
)

func (m *Manager) randRange(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}

// burst spawns count particles fanned around baseAngle within ±spread.
func (m *Manager) burst(at vec.Vec2, baseAngle, spread float64, count int, speedLo, speedHi, ttlLo, ttlHi, sizeLo, sizeHi, drag float64, kind ParticleKind) {
	for i := 0; i < count; i++ {
		angle := baseAngle + m.randRange(-spread, spread)
		speed := m.randRange(speedLo, speedHi)
		ttl := m.randRange(ttlLo, ttlHi)

		pos := Position{Pos: at}
		mot := Motion{Vel: vec.FromAngle(angle, speed), Drag: drag}
		p := Particle{
			TTL:  ttl,
			Life: ttl,
			Size: m.randRange(sizeLo, sizeHi),
			Kind: kind,
		}

		m.particleMapper.NewEntity(&pos, &mot, &p)
		m.particleCount++
	}
}

// EmitSplash sprays water droplets away from the collision normal.
func (m *Manager) EmitSplash(at, normal vec.Vec2) {
	ttl := m.params.ParticleTTL
	m.burst(at, normal.Angle(), 0.9, m.params.SplashParticles,
		30, 90, ttl*0.6, ttl, 2, 4, 2.5, KindSplash)
}

// EmitSparks throws a tight fan of sparks off a rock strike.
func (m *Manager) EmitSparks(at, normal vec.Vec2) {
	ttl := m.params.ParticleTTL
	m.burst(at, normal.Angle(), 0.6, m.params.SparkParticles,
		60, 160, ttl*0.4, ttl*0.8, 1, 2.5, 3.5, KindSpark)
}

// EmitWreck puffs smoke in all directions where a vehicle died.
func (m *Manager) EmitWreck(at vec.Vec2) {
	ttl := m.params.ParticleTTL
	m.burst(at, 0, math.Pi, m.params.SplashParticles,
		10, 50, ttl*1.2, ttl*2.0, 3, 6, 1.5, KindSmoke)
}

// EmitMudDust kicks dust out behind a vehicle churning through mud.
func (m *Manager) EmitMudDust(at vec.Vec2, vehicleAngle float64) {
	ttl := m.params.ParticleTTL
	m.burst(at, vehicleAngle+math.Pi, 0.5, m.params.DustParticles,
		15, 45, ttl*0.5, ttl, 2, 3.5, 2.0, KindDust)
}

// LayTracks drops a pair of tire marks behind the wheels once the vehicle
// has moved a full spacing step since its last pair.
func (m *Manager) LayTracks(vehicleID uint64, pos vec.Vec2, angle, width float64) {
	if last, ok := m.lastTrack[vehicleID]; ok {
		if pos.DistanceSq(last) < m.params.TrackSpacing*m.params.TrackSpacing {
			return
		}
	}
	m.lastTrack[vehicleID] = pos

	offset := vec.FromAngle(angle+math.Pi/2, width*0.33)
	for _, at := range []vec.Vec2{pos.Add(offset), pos.Sub(offset)} {
		tpos := Position{Pos: at}
		tr := Track{
			TTL:   m.params.TrackTTL,
			Life:  m.params.TrackTTL,
			Angle: angle,
			Width: 3,
		}
		m.trackMapper.NewEntity(&tpos, &tr)
		m.trackCount++
	}
}
