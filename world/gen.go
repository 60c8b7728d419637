package world

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/rranshous/raceon/vec"
)

// AnchorPond is the anchor group name registered at every pond center.
const AnchorPond = "pond"

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 1.0 / 512.0

	// Noise gates bias features into coherent regions: ponds collect in
	// basins, rocks on ridges, mud in between.
	pondNoiseMin = 0.1
	rockNoiseMax = -0.05
	mudNoiseBand = 0.15

	// Attempts per feature kind before the noise gate is dropped, so a
	// sparse field still fills the quota.
	gatedAttempts = 400
	maxAttempts   = 800
)

// GenParams control procedural terrain generation. The same seed and params
// always produce the same world.
type GenParams struct {
	Seed int64

	Ponds         int
	PondRadiusMin float64
	PondRadiusMax float64

	Rocks         int
	RockRadiusMin float64
	RockRadiusMax float64

	MudPatches     int
	MudRadiusMin   float64
	MudRadiusMax   float64
	MudSlowdownMin float64
	MudSlowdownMax float64

	// EdgeMargin keeps feature edges off the world border so the fence
	// line stays drivable.
	EdgeMargin float64
	// MinSpacing is the minimum gap between solid feature edges.
	MinSpacing float64
	// StartClearRadius keeps the world center free of features.
	StartClearRadius float64
}

// Generate builds a terrain layout from a perlin field and the given params,
// registers a pond anchor per pond, and leaves the avoidance grid built.
func Generate(width, height float64, p GenParams) *World {
	g := &generator{
		world: New(width, height),
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, p.Seed),
		rng:   rand.New(rand.NewSource(p.Seed)),
		p:     p,
	}
	g.placePonds()
	g.placeRocks()
	g.placeMud()
	g.world.BuildAvoidanceGrid()
	return g.world
}

type generator struct {
	world *World
	noise *perlin.Perlin
	rng   *rand.Rand
	p     GenParams
}

func (g *generator) placePonds() {
	placed := 0
	for attempt := 0; attempt < maxAttempts && placed < g.p.Ponds; attempt++ {
		pos := g.randomPoint()
		r := g.randRange(g.p.PondRadiusMin, g.p.PondRadiusMax)
		if !g.openForSolid(pos, r) {
			continue
		}
		if attempt < gatedAttempts && g.sample(pos) < pondNoiseMin {
			continue
		}
		g.world.AddWater(pos, r)
		g.world.AddAnchor(AnchorPond, pos)
		placed++
	}
}

func (g *generator) placeRocks() {
	placed := 0
	for attempt := 0; attempt < maxAttempts && placed < g.p.Rocks; attempt++ {
		pos := g.randomPoint()
		r := g.randRange(g.p.RockRadiusMin, g.p.RockRadiusMax)
		if !g.openForSolid(pos, r) {
			continue
		}
		if attempt < gatedAttempts && g.sample(pos) > rockNoiseMax {
			continue
		}
		g.world.AddRock(pos, r)
		placed++
	}
}

func (g *generator) placeMud() {
	placed := 0
	for attempt := 0; attempt < maxAttempts && placed < g.p.MudPatches; attempt++ {
		pos := g.randomPoint()
		r := g.randRange(g.p.MudRadiusMin, g.p.MudRadiusMax)
		slowdown := g.randRange(g.p.MudSlowdownMin, g.p.MudSlowdownMax)
		if !g.openForZone(pos, r) {
			continue
		}
		n := g.sample(pos)
		if attempt < gatedAttempts && (n < -mudNoiseBand || n > mudNoiseBand) {
			continue
		}
		g.world.AddZone(pos, r, slowdown)
		placed++
	}
}

func (g *generator) randomPoint() vec.Vec2 {
	m := g.p.EdgeMargin
	return vec.New(
		m+g.rng.Float64()*(g.world.Width-2*m),
		m+g.rng.Float64()*(g.world.Height-2*m),
	)
}

func (g *generator) randRange(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func (g *generator) sample(pos vec.Vec2) float64 {
	return g.noise.Noise2D(pos.X*noiseScale, pos.Y*noiseScale)
}

// openForSolid checks edge margin, the start clearing, and spacing against
// every solid already placed.
func (g *generator) openForSolid(pos vec.Vec2, r float64) bool {
	if !g.insideMargin(pos, r) || g.inStartClearing(pos, r) {
		return false
	}
	for _, o := range g.world.water {
		if pos.Distance(o.Position) < o.Radius+r+g.p.MinSpacing {
			return false
		}
	}
	for _, o := range g.world.rocks {
		if pos.Distance(o.Position) < o.Radius+r+g.p.MinSpacing {
			return false
		}
	}
	return true
}

// openForZone is looser: mud may lap against solids, it just cannot center
// inside water or the start clearing.
func (g *generator) openForZone(pos vec.Vec2, r float64) bool {
	if !g.insideMargin(pos, r) || g.inStartClearing(pos, r) {
		return false
	}
	for _, o := range g.world.water {
		if pos.Distance(o.Position) < o.Radius {
			return false
		}
	}
	return true
}

func (g *generator) insideMargin(pos vec.Vec2, r float64) bool {
	m := g.p.EdgeMargin + r
	return pos.X >= m && pos.X <= g.world.Width-m &&
		pos.Y >= m && pos.Y <= g.world.Height-m
}

func (g *generator) inStartClearing(pos vec.Vec2, r float64) bool {
	center := vec.New(g.world.Width/2, g.world.Height/2)
	return pos.Distance(center) < g.p.StartClearRadius+r
}
