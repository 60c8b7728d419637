package telemetry

import (
	"github.com/rranshous/raceon/events"
)

// Collector aggregates bus events into fixed sim-time windows.
// Not safe for concurrent use; the game loop owns it.
type Collector struct {
	window  float64
	elapsed float64
	simTime float64

	windowStartTick int64

	spawned         int
	escaped         int
	wreckedByPlayer int
	wreckedOther    int
	playerWaterHits int
	playerRockHits  int
	enemyWaterHits  int
	enemyRockHits   int
}

// NewCollector creates a collector with the given window length in
// simulated seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5.0
	}
	return &Collector{window: windowSec}
}

// Attach subscribes the collector to every event on the bus.
func (c *Collector) Attach(bus *events.Bus) {
	bus.Subscribe(c.handle)
}

func (c *Collector) handle(e events.Event) {
	switch e.Type {
	case events.VehicleSpawned:
		c.spawned++
	case events.VehicleEscaped:
		c.escaped++
	case events.VehicleDestroyed:
		if e.Cause == events.CausePlayer {
			c.wreckedByPlayer++
		} else {
			c.wreckedOther++
		}
	case events.PlayerWaterHit:
		c.playerWaterHits++
	case events.PlayerRockHit:
		c.playerRockHits++
	case events.EnemyWaterHit:
		c.enemyWaterHits++
	case events.EnemyRockHit:
		c.enemyRockHits++
	}
}

// Advance accumulates simulated time. Returns true once the current
// window has elapsed and should be flushed.
func (c *Collector) Advance(dt float64) bool {
	c.elapsed += dt
	c.simTime += dt
	return c.elapsed >= c.window
}

// SimTime returns total simulated seconds observed so far.
func (c *Collector) SimTime() float64 {
	return c.simTime
}

// Flush builds the stats row for the closing window and resets the
// window counters. Speeds are sampled by the caller at window end.
func (c *Collector) Flush(tick int64, liveVehicles, score int, speeds []float64) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		SimTimeSec:      c.simTime,
		LiveVehicles:    liveVehicles,
		Score:           score,
		Spawned:         c.spawned,
		Escaped:         c.escaped,
		WreckedByPlayer: c.wreckedByPlayer,
		WreckedOther:    c.wreckedOther,
		PlayerWaterHits: c.playerWaterHits,
		PlayerRockHits:  c.playerRockHits,
		EnemyWaterHits:  c.enemyWaterHits,
		EnemyRockHits:   c.enemyRockHits,
	}
	stats.SpeedMean, stats.SpeedStd, stats.SpeedP10, stats.SpeedP50, stats.SpeedP90 = SpeedDistribution(speeds)

	c.elapsed -= c.window
	if c.elapsed < 0 {
		c.elapsed = 0
	}
	c.windowStartTick = tick
	c.spawned = 0
	c.escaped = 0
	c.wreckedByPlayer = 0
	c.wreckedOther = 0
	c.playerWaterHits = 0
	c.playerRockHits = 0
	c.enemyWaterHits = 0
	c.enemyRockHits = 0

	return stats
}
