package effects

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/vec"
)

// Shake offset is capped at this many world units at full trauma.
const maxShakePixels = 8.0

// Params tunes the effects layer.
type Params struct {
	SplashParticles int
	SparkParticles  int
	DustParticles   int
	ParticleTTL     float64
	TrackSpacing    float64
	TrackTTL        float64
	ShakeDecay      float64
}

// DefaultParams returns the tuning used when no config is loaded.
func DefaultParams() Params {
	return Params{
		SplashParticles: 14,
		SparkParticles:  8,
		DustParticles:   5,
		ParticleTTL:     0.9,
		TrackSpacing:    18,
		TrackTTL:        6.0,
		ShakeDecay:      2.5,
	}
}

// Manager owns the effects ECS world.
type Manager struct {
	world *ecs.World

	particleMapper *ecs.Map3[Position, Motion, Particle]
	particleFilter *ecs.Filter3[Position, Motion, Particle]
	trackMapper    *ecs.Map2[Position, Track]
	trackFilter    *ecs.Filter2[Position, Track]

	rng    *rand.Rand
	params Params

	particleCount int
	trackCount    int

	trauma float64

	// Last track position per vehicle, for spacing marks.
	lastTrack map[uint64]vec.Vec2
}

// NewManager creates an effects manager with its own ECS world.
func NewManager(params Params, seed int64) *Manager {
	world := ecs.NewWorld()

	return &Manager{
		world:          world,
		particleMapper: ecs.NewMap3[Position, Motion, Particle](world),
		particleFilter: ecs.NewFilter3[Position, Motion, Particle](world),
		trackMapper:    ecs.NewMap2[Position, Track](world),
		trackFilter:    ecs.NewFilter2[Position, Track](world),
		rng:            rand.New(rand.NewSource(seed)),
		params:         params,
		lastTrack:      make(map[uint64]vec.Vec2),
	}
}

// Attach subscribes the manager to collision and wreck events.
func (m *Manager) Attach(bus *events.Bus) {
	bus.Subscribe(m.handle,
		events.PlayerWaterHit, events.EnemyWaterHit,
		events.PlayerRockHit, events.EnemyRockHit,
		events.VehicleDestroyed,
	)
}

func (m *Manager) handle(e events.Event) {
	switch e.Type {
	case events.PlayerWaterHit, events.EnemyWaterHit:
		m.EmitSplash(e.Position, e.Normal)
		if e.Type == events.PlayerWaterHit {
			m.AddShake(0.3)
		}
	case events.PlayerRockHit, events.EnemyRockHit:
		m.EmitSparks(e.Position, e.Normal)
		if e.Type == events.PlayerRockHit {
			m.AddShake(0.4)
		}
	case events.VehicleDestroyed:
		m.EmitWreck(e.Position)
		m.AddShake(0.5)
	}
}

// Update advances particle motion, ages everything out, and decays shake.
func (m *Manager) Update(dt float64) {
	if dt <= 0 {
		return
	}

	// First pass: integrate and collect expired (must complete before
	// modifying the world).
	var deadParticles []ecs.Entity

	query := m.particleFilter.Query()
	for query.Next() {
		pos, mot, p := query.Get()

		p.TTL -= dt
		if p.TTL <= 0 {
			deadParticles = append(deadParticles, query.Entity())
			continue
		}

		pos.Pos = pos.Pos.Add(mot.Vel.Scale(dt))
		damp := 1 - mot.Drag*dt
		if damp < 0 {
			damp = 0
		}
		mot.Vel = mot.Vel.Scale(damp)
	}

	for _, e := range deadParticles {
		m.particleMapper.Remove(e)
		m.particleCount--
	}

	var deadTracks []ecs.Entity

	tq := m.trackFilter.Query()
	for tq.Next() {
		_, tr := tq.Get()

		tr.TTL -= dt
		if tr.TTL <= 0 {
			deadTracks = append(deadTracks, tq.Entity())
		}
	}

	for _, e := range deadTracks {
		m.trackMapper.Remove(e)
		m.trackCount--
	}

	m.trauma -= m.params.ShakeDecay * dt
	if m.trauma < 0 {
		m.trauma = 0
	}
}

// AddShake raises screen trauma, clamped to 1.
func (m *Manager) AddShake(amount float64) {
	m.trauma += amount
	if m.trauma > 1 {
		m.trauma = 1
	}
}

// Trauma returns current shake trauma in [0, 1].
func (m *Manager) Trauma() float64 {
	return m.trauma
}

// ShakeOffset returns a camera jitter for this frame. Magnitude scales
// with trauma squared so small bumps stay subtle.
func (m *Manager) ShakeOffset() vec.Vec2 {
	if m.trauma <= 0 {
		return vec.Vec2{}
	}
	mag := m.trauma * m.trauma * maxShakePixels
	return vec.New(
		(m.rng.Float64()*2-1)*mag,
		(m.rng.Float64()*2-1)*mag,
	)
}

// ParticleCount returns the number of live particles.
func (m *Manager) ParticleCount() int {
	return m.particleCount
}

// TrackCount returns the number of live tire marks.
func (m *Manager) TrackCount() int {
	return m.trackCount
}

// EachParticle calls fn for every live particle.
func (m *Manager) EachParticle(fn func(pos vec.Vec2, p Particle)) {
	query := m.particleFilter.Query()
	for query.Next() {
		pos, _, p := query.Get()
		fn(pos.Pos, *p)
	}
}

// EachTrack calls fn for every live tire mark.
func (m *Manager) EachTrack(fn func(pos vec.Vec2, t Track)) {
	query := m.trackFilter.Query()
	for query.Next() {
		pos, tr := query.Get()
		fn(pos.Pos, *tr)
	}
}

// Forget drops per-vehicle track state, for vehicles leaving the sim.
func (m *Manager) Forget(vehicleID uint64) {
	delete(m.lastTrack, vehicleID)
}
