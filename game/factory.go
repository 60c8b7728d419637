package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rranshous/raceon/config"
	"github.com/rranshous/raceon/entity"
	"github.com/rranshous/raceon/steering"
	"github.com/rranshous/raceon/world"
)

// buildTypes turns the config vehicle list into the runtime type registry.
func buildTypes(cfg *config.Config) (*entity.Registry, error) {
	reg := entity.NewRegistry()

	for _, vc := range cfg.Vehicles {
		t := &entity.Type{
			Name:            vc.Name,
			Behavior:        vc.Behavior,
			Width:           vc.Width,
			Height:          vc.Height,
			MaxSpeed:        vc.MaxSpeed,
			Acceleration:    vc.Acceleration,
			Friction:        vc.Friction,
			TurnSpeed:       vc.TurnSpeed,
			ReverseFraction: vc.ReverseFraction,
			Physics: entity.Physics{
				RadiusMultiplier:          vc.Physics.RadiusMultiplier,
				BounceDistance:            vc.Physics.BounceDistance,
				BounceFactor:              vc.Physics.BounceFactor,
				TerrainFrictionMultiplier: vc.Physics.TerrainFrictionMultiplier,
				MinSpeedMultiplier:        vc.Physics.MinSpeedMultiplier,
				MinReverseSpeedMultiplier: vc.Physics.MinReverseSpeedMultiplier,
				WaterQueryMultiplier:      vc.Physics.WaterQueryMultiplier,
				RockQueryMultiplier:       vc.Physics.RockQueryMultiplier,
			},
			AI: entity.AITuning{
				WanderStrength: vc.AI.WanderStrength,
				StuckTimeout:   vc.AI.StuckTimeout,
				AvoidDuration:  vc.AI.AvoidDuration,
				AvoidCooldown:  vc.AI.AvoidCooldown,
			},
			Spawn: entity.SpawnPolicy{
				Interval:    vc.Spawn.Interval,
				MaxActive:   vc.Spawn.MaxActive,
				Anchor:      vc.Spawn.Anchor,
				DistanceMin: vc.Spawn.DistanceMin,
				DistanceMax: vc.Spawn.DistanceMax,
			},
			Extra: vc.Extra,
		}

		if err := reg.Register(t); err != nil {
			return nil, fmt.Errorf("registering vehicle type: %w", err)
		}
	}

	if reg.Len() == 0 {
		return nil, fmt.Errorf("no vehicle types configured")
	}
	return reg, nil
}

// buildBehaviors wires the steering registry. The returned player behavior
// is the handle input gets pushed through each frame.
func buildBehaviors(seed int64, now func() time.Time) (*steering.Registry, *steering.Player) {
	reg := steering.NewRegistry()

	player := steering.NewPlayer()
	reg.Register("player", player)
	reg.Register("runner", steering.NewRunner(rand.New(rand.NewSource(seed)), now))
	reg.Register("chaser", steering.NewChaser(rand.New(rand.NewSource(seed+1)), now))

	return reg, player
}

// buildWorld generates terrain from the config generation block.
func buildWorld(cfg *config.Config, seed int64) *world.World {
	gen := cfg.World.Gen
	return world.Generate(
		cfg.Derived.WorldW,
		cfg.Derived.WorldH,
		world.GenParams{
			Seed:             seed,
			Ponds:            gen.Ponds,
			PondRadiusMin:    gen.PondRadiusMin,
			PondRadiusMax:    gen.PondRadiusMax,
			Rocks:            gen.Rocks,
			RockRadiusMin:    gen.RockRadiusMin,
			RockRadiusMax:    gen.RockRadiusMax,
			MudPatches:       gen.MudPatches,
			MudRadiusMin:     gen.MudRadiusMin,
			MudRadiusMax:     gen.MudRadiusMax,
			MudSlowdownMin:   gen.MudSlowdownMin,
			MudSlowdownMax:   gen.MudSlowdownMax,
			EdgeMargin:       gen.EdgeMargin,
			MinSpacing:       gen.MinSpacing,
			StartClearRadius: gen.StartClearRadius,
		},
	)
}
