package game

import (
	"go.uber.org/zap"

	"github.com/rranshous/raceon/config"
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/physics"
)

const defaultWreckPoints = 50.0

// combatState tracks score, hull, and escalation between ticks. It lives
// on the Game rather than in the simulation so a headless run without
// ramming rules stays possible.
type combatState struct {
	score      int
	streak     int
	bestStreak int
	kills      int
	health     int
	maxHealth  int
	invulnFor  float64
	gameOver   bool
}

func newCombatState(cfg config.CombatConfig) combatState {
	health := cfg.PlayerHealth
	if health <= 0 {
		health = 3
	}
	return combatState{health: health, maxHealth: health}
}

// resolveCombat judges every player contact this tick. Nose-forward wins
// wreck the loser; a tie bounces both parties without damage (the physics
// pass already separated them).
func (g *Game) resolveCombat(dt float64) {
	c := &g.combat
	if c.invulnFor > 0 {
		c.invulnFor -= dt
		if c.invulnFor < 0 {
			c.invulnFor = 0
		}
	}
	if c.gameOver {
		return
	}
	player := g.sim.Player()
	if player == nil || !player.Alive {
		return
	}

	for _, other := range g.sim.CollisionsWithPlayer() {
		winner := physics.RamWinner(player, other, g.cfg.Combat.FrontOffset, g.cfg.Combat.Tolerance)
		switch winner {
		case player:
			g.wreck(other)
		case other:
			g.takeHit(player)
		default:
			// Toss-up: nobody had the nose. Leave both running.
		}
		if c.gameOver {
			return
		}
	}
}

// wreck destroys an AI vehicle the player rammed and scores it. Streaks
// multiply: the Nth consecutive wreck is worth N times its base points.
func (g *Game) wreck(other *entity.Vehicle) {
	c := &g.combat
	g.sim.Destroy(other, events.CausePlayer)
	c.kills++
	c.streak++
	if c.streak > c.bestStreak {
		c.bestStreak = c.streak
	}
	points := wreckPoints(other.Type) * c.streak
	c.score += points

	g.log.Info("vehicle wrecked",
		zap.Uint64("id", other.ID),
		zap.String("type", other.Type.Name),
		zap.Int("points", points),
		zap.Int("streak", c.streak),
		zap.Int("score", c.score),
	)

	every := g.cfg.Combat.EscalationKills
	if every > 0 && c.kills%every == 0 {
		g.escalate()
	}
}

// escalate spawns an extra hunter outside the normal cap. The pressure
// only ever ratchets up; wrecking the extras does not relax it.
func (g *Game) escalate() {
	typeName := g.cfg.Combat.EscalationType
	if typeName == "" {
		return
	}
	v, err := g.sim.Spawn(typeName, nil)
	if err != nil {
		g.log.Warn("escalation spawn failed", zap.String("type", typeName), zap.Error(err))
		return
	}
	g.log.Info("escalation", zap.Int("kills", g.combat.kills), zap.Uint64("id", v.ID))
}

// takeHit applies one losing ram to the player: a hull point, the streak,
// and a grace window so a single shove cannot drain the whole bar.
func (g *Game) takeHit(player *entity.Vehicle) {
	c := &g.combat
	if c.invulnFor > 0 {
		return
	}
	c.health--
	c.streak = 0
	c.invulnFor = g.cfg.Combat.InvulnSeconds
	g.effects.AddShake(0.6)

	g.log.Info("player rammed", zap.Int("health", c.health))

	if c.health <= 0 {
		c.gameOver = true
		g.sim.Destroy(player, events.CauseEnvironment)
		g.log.Info("game over",
			zap.Int("score", c.score),
			zap.Int("best_streak", c.bestStreak),
			zap.Int("wrecks", c.kills),
		)
	}
}

// wreckPoints reads a type's bounty from its extra table.
func wreckPoints(t *entity.Type) int {
	if t != nil && t.Extra != nil {
		if p, ok := t.Extra["points"]; ok && p > 0 {
			return int(p)
		}
	}
	return int(defaultWreckPoints)
}
