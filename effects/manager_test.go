package effects

import (
	"math"
	"testing"

	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/vec"
)

func newTestManager() *Manager {
	return NewManager(DefaultParams(), 7)
}

func hitVehicle(player bool) *entity.Vehicle {
	vt := &entity.Type{Name: "runner", Width: 20, Height: 34,
		Physics: entity.Physics{RadiusMultiplier: 0.5}}
	v := entity.NewVehicle(1, vt, vec.New(100, 100), 0)
	v.IsPlayer = player
	return v
}

func TestSplashOnPlayerWaterHit(t *testing.T) {
	m := newTestManager()
	bus := events.NewBus()
	m.Attach(bus)

	bus.Publish(events.NewObstacleHit(events.PlayerWaterHit, hitVehicle(true),
		vec.New(120, 100), 15, vec.New(-1, 0), 3))

	if got, want := m.ParticleCount(), DefaultParams().SplashParticles; got != want {
		t.Errorf("ParticleCount = %d, want %d", got, want)
	}
	if m.Trauma() <= 0 {
		t.Error("player water hit should add shake")
	}
}

func TestEnemyHitAddsNoShake(t *testing.T) {
	m := newTestManager()
	bus := events.NewBus()
	m.Attach(bus)

	bus.Publish(events.NewObstacleHit(events.EnemyRockHit, hitVehicle(false),
		vec.New(120, 100), 15, vec.New(-1, 0), 3))

	if m.ParticleCount() == 0 {
		t.Error("enemy rock hit should emit sparks")
	}
	if m.Trauma() != 0 {
		t.Errorf("Trauma = %v, want 0 for enemy hit", m.Trauma())
	}
}

func TestWreckEmitsSmoke(t *testing.T) {
	m := newTestManager()
	bus := events.NewBus()
	m.Attach(bus)

	bus.Publish(events.NewDestroyed(hitVehicle(false), events.CausePlayer))

	if got, want := m.ParticleCount(), DefaultParams().SplashParticles; got != want {
		t.Errorf("ParticleCount = %d, want %d", got, want)
	}

	smoke := 0
	m.EachParticle(func(_ vec.Vec2, p Particle) {
		if p.Kind == KindSmoke {
			smoke++
		}
	})
	if smoke != m.ParticleCount() {
		t.Errorf("smoke particles = %d, want all %d", smoke, m.ParticleCount())
	}
	if m.Trauma() <= 0 {
		t.Error("wreck should add shake")
	}
}

func TestSplashParticlesFlyAlongNormal(t *testing.T) {
	m := newTestManager()

	m.EmitSplash(vec.New(100, 100), vec.New(1, 0))
	m.Update(0.05)

	m.EachParticle(func(pos vec.Vec2, _ Particle) {
		if pos.X <= 100 {
			t.Errorf("particle at %v did not move along +X normal", pos)
		}
	})
}

func TestParticlesAgeOut(t *testing.T) {
	m := newTestManager()

	m.EmitSplash(vec.New(100, 100), vec.New(1, 0))
	if m.ParticleCount() == 0 {
		t.Fatal("no particles emitted")
	}

	m.Update(DefaultParams().ParticleTTL + 0.1)

	if m.ParticleCount() != 0 {
		t.Errorf("ParticleCount = %d after TTL elapsed, want 0", m.ParticleCount())
	}
}

func TestShakeDecays(t *testing.T) {
	m := newTestManager()

	m.AddShake(1.0)
	m.Update(0.2)
	if math.Abs(m.Trauma()-0.5) > 1e-9 {
		t.Errorf("Trauma = %v after 0.2s, want 0.5", m.Trauma())
	}

	m.Update(0.3)
	if m.Trauma() != 0 {
		t.Errorf("Trauma = %v, want 0 after full decay", m.Trauma())
	}
}

func TestShakeClampsAtFullTrauma(t *testing.T) {
	m := newTestManager()

	m.AddShake(0.8)
	m.AddShake(0.8)

	if m.Trauma() != 1.0 {
		t.Errorf("Trauma = %v, want clamped 1.0", m.Trauma())
	}
}

func TestShakeOffsetBounds(t *testing.T) {
	m := newTestManager()

	if off := m.ShakeOffset(); off.X != 0 || off.Y != 0 {
		t.Errorf("ShakeOffset = %v with zero trauma, want zero", off)
	}

	m.AddShake(1.0)
	for i := 0; i < 20; i++ {
		off := m.ShakeOffset()
		if math.Abs(off.X) > maxShakePixels || math.Abs(off.Y) > maxShakePixels {
			t.Errorf("ShakeOffset = %v exceeds max %v", off, maxShakePixels)
		}
	}
}

func TestTrackSpacing(t *testing.T) {
	m := newTestManager()

	m.LayTracks(1, vec.New(0, 0), 0, 24)
	if m.TrackCount() != 2 {
		t.Fatalf("TrackCount = %d after first pair, want 2", m.TrackCount())
	}

	// Within spacing: no new marks.
	m.LayTracks(1, vec.New(10, 0), 0, 24)
	if m.TrackCount() != 2 {
		t.Errorf("TrackCount = %d inside spacing, want 2", m.TrackCount())
	}

	m.LayTracks(1, vec.New(20, 0), 0, 24)
	if m.TrackCount() != 4 {
		t.Errorf("TrackCount = %d past spacing, want 4", m.TrackCount())
	}
}

func TestTracksOffsetPerpendicular(t *testing.T) {
	m := newTestManager()

	m.LayTracks(1, vec.New(50, 50), 0, 24)

	var ys []float64
	m.EachTrack(func(pos vec.Vec2, tr Track) {
		if math.Abs(pos.X-50) > 1e-9 {
			t.Errorf("track X = %v, want 50 for heading 0", pos.X)
		}
		ys = append(ys, pos.Y-50)
	})

	if len(ys) != 2 {
		t.Fatalf("got %d tracks, want 2", len(ys))
	}
	if math.Abs(ys[0]+ys[1]) > 1e-9 {
		t.Errorf("track offsets %v not symmetric about the center line", ys)
	}
}

func TestTracksAgeOut(t *testing.T) {
	m := newTestManager()

	m.LayTracks(1, vec.New(0, 0), 0, 24)
	m.Update(DefaultParams().TrackTTL + 0.1)

	if m.TrackCount() != 0 {
		t.Errorf("TrackCount = %d after TTL elapsed, want 0", m.TrackCount())
	}
}

func TestMudDustEmitsBehindVehicle(t *testing.T) {
	m := newTestManager()

	// Vehicle heading east: dust goes west.
	m.EmitMudDust(vec.New(100, 100), 0)
	m.Update(0.05)

	m.EachParticle(func(pos vec.Vec2, p Particle) {
		if p.Kind != KindDust {
			t.Errorf("kind = %v, want dust", p.Kind)
		}
		if pos.X >= 100 {
			t.Errorf("dust at %v did not move behind the vehicle", pos)
		}
	})
	if m.ParticleCount() != DefaultParams().DustParticles {
		t.Errorf("ParticleCount = %d, want %d", m.ParticleCount(), DefaultParams().DustParticles)
	}
}

func TestForgetDropsTrackState(t *testing.T) {
	m := newTestManager()

	m.LayTracks(1, vec.New(0, 0), 0, 24)
	m.Forget(1)

	// Same spot lays again once state is gone.
	m.LayTracks(1, vec.New(0, 0), 0, 24)
	if m.TrackCount() != 4 {
		t.Errorf("TrackCount = %d after Forget, want 4", m.TrackCount())
	}
}
