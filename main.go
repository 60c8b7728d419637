package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/rranshous/raceon/config"
	"github.com/rranshous/raceon/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logStats := flag.Bool("log-stats", false, "Log window stats")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	log, err := game.NewLogger(*headless, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	opts := game.Options{
		Seed:           *seed,
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		runHeadless(cfg, log, opts, *maxTicks)
		return
	}
	runWindowed(cfg, log, opts, *maxTicks)
}

// runHeadless drives fixed-dt ticks as fast as the CPU allows, stopping at
// max-ticks, game over, or never.
func runHeadless(cfg *config.Config, log *zap.Logger, opts game.Options, maxTicks int64) {
	g, err := game.New(cfg, log, opts)
	if err != nil {
		log.Fatal("failed to build game", zap.Error(err))
	}
	defer g.Unload()

	log.Info("starting headless run",
		zap.Int64("max_ticks", maxTicks),
		zap.Int("steps_per_update", opts.StepsPerUpdate),
	)

	for {
		g.UpdateHeadless()

		if g.GameOver() {
			log.Info("player wrecked", zap.Int64("tick", g.Tick()), zap.Int("score", g.Score()))
			return
		}
		if maxTicks > 0 && g.Tick() >= maxTicks {
			log.Info("max ticks reached", zap.Int64("tick", g.Tick()), zap.Int("score", g.Score()))
			return
		}
	}
}

// runWindowed opens the raylib window and drives the frame loop. A menu
// restart tears the game down and builds a fresh one with a new seed.
func runWindowed(cfg *config.Config, log *zap.Logger, opts game.Options, maxTicks int64) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "RaceOn")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(cfg, log, opts)
	if err != nil {
		log.Fatal("failed to build game", zap.Error(err))
	}
	defer func() { g.Unload() }()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if g.ShouldQuit() {
			break
		}
		if g.ShouldRestart() {
			g.Unload()
			opts.Seed = time.Now().UnixNano()
			g, err = game.New(cfg, log, opts)
			if err != nil {
				log.Fatal("failed to rebuild game", zap.Error(err))
			}
			continue
		}
		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
}
