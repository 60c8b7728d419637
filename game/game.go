package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rranshous/raceon/camera"
	"github.com/rranshous/raceon/config"
	"github.com/rranshous/raceon/effects"
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/events"
	"github.com/rranshous/raceon/renderer"
	"github.com/rranshous/raceon/sim"
	"github.com/rranshous/raceon/steering"
	"github.com/rranshous/raceon/telemetry"
	"github.com/rranshous/raceon/ui"
	"github.com/rranshous/raceon/vec"
	"github.com/rranshous/raceon/world"
)

// headlessDT is the fixed timestep for headless runs. Windowed runs use
// the measured frame time instead.
const headlessDT = 1.0 / 60.0

// Options are the CLI-level knobs main wires through.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete game state: world, simulation, effects,
// telemetry, and the rendering front end.
type Game struct {
	cfg    *config.Config
	log    *zap.Logger
	telLog *zap.Logger

	world     *world.World
	types     *entity.Registry
	playerCtl *steering.Player
	sim       *sim.Simulation

	effects *effects.Manager
	cam     *camera.Camera
	combat  combatState

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	terrainR  *renderer.TerrainRenderer
	vehicleR  *renderer.VehicleRenderer
	particleR *renderer.ParticleRenderer
	debugR    *renderer.DebugRenderer
	hud       *ui.HUD
	menus     *ui.Menus

	headless       bool
	logStats       bool
	stepsPerUpdate int

	paused       bool
	debugMode    bool
	wantsRestart bool
	wantsQuit    bool

	dustCooldown float64

	screenW int32
	screenH int32
}

// New wires the whole game together from config. The zero seed means
// time-based; a fixed seed reproduces a run exactly in headless mode.
func New(cfg *config.Config, log *zap.Logger, opts Options) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	steps := opts.StepsPerUpdate
	if steps <= 0 {
		steps = 1
	}

	w := buildWorld(cfg, seed)
	types, err := buildTypes(cfg)
	if err != nil {
		return nil, err
	}
	behaviors, playerCtl := buildBehaviors(seed, nil)

	bus := events.NewBus()
	s := sim.New(w, types, behaviors, bus, sim.Params{
		EscapeMargin: cfg.World.EscapeMargin,
		Seed:         seed,
	}, log.Named("sim"))

	fx := effects.NewManager(effects.Params{
		SplashParticles: cfg.Effects.SplashParticles,
		SparkParticles:  cfg.Effects.SparkParticles,
		DustParticles:   cfg.Effects.DustParticles,
		ParticleTTL:     cfg.Effects.ParticleTTL,
		TrackSpacing:    cfg.Effects.TrackSpacing,
		TrackTTL:        cfg.Effects.TrackTTL,
		ShakeDecay:      cfg.Effects.ShakeDecay,
	}, seed)

	collector := telemetry.NewCollector(statsWindow)
	collector.Attach(bus)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	if output != nil {
		if err := output.WriteConfig(cfg); err != nil {
			log.Warn("config snapshot failed", zap.Error(err))
		}
		log.Info("telemetry output enabled",
			zap.String("run_id", output.RunID()),
			zap.String("dir", output.Dir()),
		)
	}

	g := &Game{
		cfg:            cfg,
		log:            log.Named("game"),
		telLog:         log.Named("telemetry"),
		world:          w,
		types:          types,
		playerCtl:      playerCtl,
		sim:            s,
		effects:        fx,
		combat:         newCombatState(cfg.Combat),
		collector:      collector,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		output:         output,
		terrainR:       renderer.NewTerrainRenderer(),
		vehicleR:       renderer.NewVehicleRenderer(),
		particleR:      renderer.NewParticleRenderer(),
		debugR:         renderer.NewDebugRenderer(),
		hud:            ui.NewHUD(),
		menus:          ui.NewMenus(),
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		stepsPerUpdate: steps,
		screenW:        int32(cfg.Screen.Width),
		screenH:        int32(cfg.Screen.Height),
	}

	// The effects layer is cosmetic; headless runs skip it entirely.
	if !g.headless {
		fx.Attach(bus)
	}
	if output != nil {
		bus.Subscribe(func(e events.Event) {
			row := telemetry.RowFromEvent(g.Tick(), g.collector.SimTime(), e)
			if werr := g.output.WriteEvent(row); werr != nil {
				g.telLog.Warn("event write failed", zap.Error(werr))
			}
		})
	}

	center := vec.New(cfg.Derived.WorldW/2, cfg.Derived.WorldH/2)
	if _, err := s.CreatePlayer(cfg.Game.PlayerType, center); err != nil {
		return nil, err
	}

	g.cam = camera.New(
		float64(cfg.Screen.Width), float64(cfg.Screen.Height),
		cfg.Derived.WorldW, cfg.Derived.WorldH,
		cfg.Game.CameraLerp,
	)
	g.cam.SnapTo(center)

	log.Info("game ready",
		zap.Int64("seed", seed),
		zap.Float64("world_w", cfg.Derived.WorldW),
		zap.Float64("world_h", cfg.Derived.WorldH),
		zap.Int("vehicle_types", types.Len()),
	)
	return g, nil
}

// Tick reports the simulation tick count.
func (g *Game) Tick() int64 {
	return int64(g.sim.Ticks())
}

// GameOver reports whether the player has been wrecked.
func (g *Game) GameOver() bool {
	return g.combat.gameOver
}

// Score reports the current score.
func (g *Game) Score() int {
	return g.combat.score
}

// ShouldQuit reports a menu quit request.
func (g *Game) ShouldQuit() bool {
	return g.wantsQuit
}

// ShouldRestart reports a menu restart request. The caller tears this
// game down and builds a fresh one.
func (g *Game) ShouldRestart() bool {
	return g.wantsRestart
}

// Unload flushes and closes the telemetry output.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		g.log.Warn("closing telemetry output", zap.Error(err))
	}
}

// liveFleet counts live AI vehicles.
func (g *Game) liveFleet() int {
	n := 0
	for _, v := range g.sim.Vehicles() {
		if v.Alive {
			n++
		}
	}
	return n
}

// liveTotal counts every live vehicle including the player.
func (g *Game) liveTotal() int {
	n := g.liveFleet()
	if p := g.sim.Player(); p != nil && p.Alive {
		n++
	}
	return n
}
