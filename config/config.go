// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Game      GameConfig      `yaml:"game"`
	Combat    CombatConfig    `yaml:"combat"`
	Effects   EffectsConfig   `yaml:"effects"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Vehicles  []VehicleConfig `yaml:"vehicles"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds world dimensions and terrain generation parameters.
// The world is larger than the screen; the camera handles the viewport.
type WorldConfig struct {
	Width        int       `yaml:"width"`
	Height       int       `yaml:"height"`
	EscapeMargin float64   `yaml:"escape_margin"` // Distance from an edge that counts as escaped
	Gen          GenConfig `yaml:"gen"`
}

// GenConfig holds procedural terrain generation parameters.
type GenConfig struct {
	Ponds            int     `yaml:"ponds"`
	PondRadiusMin    float64 `yaml:"pond_radius_min"`
	PondRadiusMax    float64 `yaml:"pond_radius_max"`
	Rocks            int     `yaml:"rocks"`
	RockRadiusMin    float64 `yaml:"rock_radius_min"`
	RockRadiusMax    float64 `yaml:"rock_radius_max"`
	MudPatches       int     `yaml:"mud_patches"`
	MudRadiusMin     float64 `yaml:"mud_radius_min"`
	MudRadiusMax     float64 `yaml:"mud_radius_max"`
	MudSlowdownMin   float64 `yaml:"mud_slowdown_min"` // Friction factor range; lower drags harder
	MudSlowdownMax   float64 `yaml:"mud_slowdown_max"`
	EdgeMargin       float64 `yaml:"edge_margin"`        // Keeps features off the fence line
	MinSpacing       float64 `yaml:"min_spacing"`        // Gap between solid feature edges
	StartClearRadius float64 `yaml:"start_clear_radius"` // Feature-free zone around the start
}

// GameConfig holds shell-level settings.
type GameConfig struct {
	PlayerType string  `yaml:"player_type"` // Vehicle type the player drives
	CameraLerp float64 `yaml:"camera_lerp"` // Camera follow rate per second
}

// CombatConfig holds the ramming rules.
type CombatConfig struct {
	FrontOffset     float64 `yaml:"front_offset"`     // Nose point distance from center
	Tolerance       float64 `yaml:"tolerance"`        // Front distance difference under this is a toss-up
	PlayerHealth    int     `yaml:"player_health"`    // Hits the player survives
	InvulnSeconds   float64 `yaml:"invuln_seconds"`   // Grace period after taking a hit
	EscalationKills int     `yaml:"escalation_kills"` // Every this many kills spawns an extra hunter
	EscalationType  string  `yaml:"escalation_type"`  // Vehicle type spawned on escalation
}

// EffectsConfig holds cosmetic particle and shake tuning.
type EffectsConfig struct {
	SplashParticles int     `yaml:"splash_particles"` // Droplets per water hit
	SparkParticles  int     `yaml:"spark_particles"`  // Sparks per rock hit
	DustParticles   int     `yaml:"dust_particles"`   // Dust per mud puff or wreck
	ParticleTTL     float64 `yaml:"particle_ttl"`     // Particle lifetime in seconds
	TrackSpacing    float64 `yaml:"track_spacing"`    // Distance between tire track stamps
	TrackTTL        float64 `yaml:"track_ttl"`        // Track fade time in seconds
	ShakeDecay      float64 `yaml:"shake_decay"`      // Trauma units shed per second
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Aggregation window in seconds
	PerfWindow  int     `yaml:"perf_window"`  // Ticks per perf report
}

// VehicleConfig defines one vehicle type. The player's truck and every AI
// type come from this list.
type VehicleConfig struct {
	Name     string `yaml:"name"`
	Behavior string `yaml:"behavior"`

	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	Friction        float64 `yaml:"friction"`         // Passive coast deceleration
	TurnSpeed       float64 `yaml:"turn_speed"`       // Radians per second
	ReverseFraction float64 `yaml:"reverse_fraction"` // Reverse cap as a fraction of max_speed

	Physics VehiclePhysicsConfig `yaml:"physics"`
	AI      VehicleAIConfig      `yaml:"ai"`
	Spawn   VehicleSpawnConfig   `yaml:"spawn"`

	// Extra carries opaque gameplay values, such as the point award for
	// wrecking this type.
	Extra map[string]float64 `yaml:"extra"`
}

// VehiclePhysicsConfig holds per-type collision and terrain response tuning.
type VehiclePhysicsConfig struct {
	RadiusMultiplier          float64 `yaml:"radius_multiplier"`
	BounceDistance            float64 `yaml:"bounce_distance"`
	BounceFactor              float64 `yaml:"bounce_factor"`
	TerrainFrictionMultiplier float64 `yaml:"terrain_friction_multiplier"`
	MinSpeedMultiplier        float64 `yaml:"min_speed_multiplier"`
	MinReverseSpeedMultiplier float64 `yaml:"min_reverse_speed_multiplier"`
	WaterQueryMultiplier      float64 `yaml:"water_query_multiplier"`
	RockQueryMultiplier       float64 `yaml:"rock_query_multiplier"`
}

// VehicleAIConfig holds steering tuning for AI-driven types.
type VehicleAIConfig struct {
	WanderStrength float64 `yaml:"wander_strength"`
	StuckTimeout   float64 `yaml:"stuck_timeout"`
	AvoidDuration  float64 `yaml:"avoid_duration"`
	AvoidCooldown  float64 `yaml:"avoid_cooldown"`
}

// VehicleSpawnConfig holds automatic spawn policy. A zero interval marks the
// type manual-spawn only.
type VehicleSpawnConfig struct {
	Interval    float64 `yaml:"interval"`
	MaxActive   int     `yaml:"max_active"`
	Anchor      string  `yaml:"anchor"`
	DistanceMin float64 `yaml:"distance_min"`
	DistanceMax float64 `yaml:"distance_max"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	WorldW       float64
	WorldH       float64
	ScreenW32    float32
	ScreenH32    float32
	VehicleIndex map[string]int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. A vehicles list in the
// user file replaces the default list wholesale.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW = float64(worldW)
	c.Derived.WorldH = float64(worldH)

	// Apply defaults to vehicles that don't specify all fields
	for i := range c.Vehicles {
		v := &c.Vehicles[i]
		if v.Physics.RadiusMultiplier == 0 {
			v.Physics.RadiusMultiplier = 0.5
		}
		if v.Physics.WaterQueryMultiplier == 0 {
			v.Physics.WaterQueryMultiplier = 1.0
		}
		if v.Physics.RockQueryMultiplier == 0 {
			v.Physics.RockQueryMultiplier = 1.0
		}
		if v.Physics.BounceDistance == 0 {
			v.Physics.BounceDistance = 2.0
		}
		if v.Physics.BounceFactor == 0 {
			v.Physics.BounceFactor = -0.3
		}
	}

	// Build vehicle index for fast lookup
	c.Derived.VehicleIndex = make(map[string]int, len(c.Vehicles))
	for i, v := range c.Vehicles {
		c.Derived.VehicleIndex[v.Name] = i
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
