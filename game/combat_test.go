package game

import (
	"math"
	"testing"

	"github.com/rranshous/raceon/config"
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/vec"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	g, err := New(cfg, nil, Options{Headless: true, Seed: 42})
	if err != nil {
		t.Fatalf("building game: %v", err)
	}
	return g
}

// spawnAt places an AI vehicle at an offset from the world center, where
// the player starts.
func spawnAt(t *testing.T, g *Game, typeName string, dx, dy float64) *entity.Vehicle {
	t.Helper()
	pos := vec.New(g.cfg.Derived.WorldW/2+dx, g.cfg.Derived.WorldH/2+dy)
	v, err := g.sim.Spawn(typeName, &pos)
	if err != nil {
		t.Fatalf("spawning %s: %v", typeName, err)
	}
	return v
}

func TestWreckScoringStreakMultiplies(t *testing.T) {
	g := newTestGame(t)
	a := spawnAt(t, g, "runner", 500, 0)
	b := spawnAt(t, g, "runner", -500, 0)

	g.wreck(a)
	if g.combat.score != 100 {
		t.Errorf("score after first wreck = %d, want 100", g.combat.score)
	}
	if g.combat.streak != 1 {
		t.Errorf("streak = %d, want 1", g.combat.streak)
	}

	g.wreck(b)
	if g.combat.score != 300 {
		t.Errorf("score after second wreck = %d, want 300 (100 + 100x2)", g.combat.score)
	}
	if g.combat.streak != 2 || g.combat.bestStreak != 2 {
		t.Errorf("streak = %d best = %d, want 2 and 2", g.combat.streak, g.combat.bestStreak)
	}
	if a.Alive || b.Alive {
		t.Error("wrecked vehicles should be dead")
	}
}

func TestWreckPoints(t *testing.T) {
	g := newTestGame(t)
	runner, _ := g.types.Lookup("runner")
	chaser, _ := g.types.Lookup("chaser")

	tests := []struct {
		name string
		typ  *entity.Type
		want int
	}{
		{"runner bounty", runner, 100},
		{"chaser bounty", chaser, 250},
		{"no extra table", &entity.Type{Name: "bare"}, 50},
		{"nil type", nil, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wreckPoints(tt.typ); got != tt.want {
				t.Errorf("wreckPoints = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveCombatPlayerNoseWins(t *testing.T) {
	g := newTestGame(t)
	player := g.sim.Player()
	player.Angle = 0

	v := spawnAt(t, g, "runner", 20, 0)
	v.Angle = math.Pi / 2

	g.resolveCombat(0.016)

	if v.Alive {
		t.Fatal("rammed runner should be wrecked")
	}
	if g.combat.score != 100 {
		t.Errorf("score = %d, want 100", g.combat.score)
	}
	if g.combat.health != g.combat.maxHealth {
		t.Errorf("player health = %d, want untouched %d", g.combat.health, g.combat.maxHealth)
	}
}

func TestResolveCombatPlayerLoses(t *testing.T) {
	g := newTestGame(t)
	player := g.sim.Player()
	player.Angle = math.Pi

	v := spawnAt(t, g, "runner", 20, 0)
	v.Angle = math.Pi
	g.combat.streak = 3

	g.resolveCombat(0.016)

	if !v.Alive {
		t.Fatal("winning rammer should survive")
	}
	if g.combat.health != g.combat.maxHealth-1 {
		t.Errorf("health = %d, want %d", g.combat.health, g.combat.maxHealth-1)
	}
	if g.combat.streak != 0 {
		t.Errorf("streak = %d, want reset to 0", g.combat.streak)
	}
	if g.combat.invulnFor != g.cfg.Combat.InvulnSeconds {
		t.Errorf("invulnFor = %v, want %v", g.combat.invulnFor, g.cfg.Combat.InvulnSeconds)
	}
}

func TestInvulnerabilityWindow(t *testing.T) {
	g := newTestGame(t)
	player := g.sim.Player()
	player.Angle = math.Pi

	v := spawnAt(t, g, "runner", 20, 0)
	v.Angle = math.Pi

	g.resolveCombat(0.016)
	if g.combat.health != 2 {
		t.Fatalf("health after first hit = %d, want 2", g.combat.health)
	}

	// Still overlapping. The grace window absorbs the next 1.5 seconds.
	g.resolveCombat(0.5)
	g.resolveCombat(0.5)
	if g.combat.health != 2 {
		t.Errorf("health during grace window = %d, want 2", g.combat.health)
	}

	g.resolveCombat(0.5)
	if g.combat.health != 1 {
		t.Errorf("health after grace expires = %d, want 1", g.combat.health)
	}
}

func TestTieDoesNothing(t *testing.T) {
	g := newTestGame(t)
	player := g.sim.Player()
	player.Angle = 0

	v := spawnAt(t, g, "runner", 20, 0)
	v.Angle = math.Pi

	g.resolveCombat(0.016)

	if !v.Alive {
		t.Error("head-on tie should wreck nobody")
	}
	if g.combat.health != g.combat.maxHealth {
		t.Errorf("health = %d, want untouched", g.combat.health)
	}
	if g.combat.score != 0 {
		t.Errorf("score = %d, want 0", g.combat.score)
	}
}

func TestEscalationEveryThirdWreck(t *testing.T) {
	g := newTestGame(t)
	vehicles := []*entity.Vehicle{
		spawnAt(t, g, "runner", 400, 0),
		spawnAt(t, g, "runner", -400, 0),
		spawnAt(t, g, "runner", 0, 400),
		spawnAt(t, g, "runner", 0, -400),
	}

	g.wreck(vehicles[0])
	g.wreck(vehicles[1])
	if got := g.sim.LiveCount("chaser"); got != 0 {
		t.Fatalf("chasers after 2 wrecks = %d, want 0", got)
	}

	g.wreck(vehicles[2])
	if got := g.sim.LiveCount("chaser"); got != 1 {
		t.Errorf("chasers after 3 wrecks = %d, want 1", got)
	}

	g.wreck(vehicles[3])
	if got := g.sim.LiveCount("chaser"); got != 1 {
		t.Errorf("chasers after 4 wrecks = %d, want still 1", got)
	}
}

func TestGameOverOnLastHit(t *testing.T) {
	g := newTestGame(t)
	player := g.sim.Player()
	g.combat.health = 1

	g.takeHit(player)

	if !g.combat.gameOver {
		t.Fatal("expected game over")
	}
	if player.Alive {
		t.Error("player should be wrecked at zero health")
	}

	// Combat resolution is a no-op once the run is over.
	g.resolveCombat(0.016)
	if g.combat.health != 0 {
		t.Errorf("health = %d, want 0", g.combat.health)
	}
}

func TestCombatStateDefaults(t *testing.T) {
	c := newCombatState(config.CombatConfig{})
	if c.health != 3 || c.maxHealth != 3 {
		t.Errorf("zero config health = %d/%d, want 3/3", c.health, c.maxHealth)
	}
}
