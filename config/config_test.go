package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Screen.Width)
	assert.Equal(t, 2400, cfg.World.Width)
	assert.Equal(t, 20.0, cfg.World.EscapeMargin)
	assert.Equal(t, "truck", cfg.Game.PlayerType)
	assert.Equal(t, 3, cfg.Combat.PlayerHealth)
	assert.Equal(t, "chaser", cfg.Combat.EscalationType)

	require.Len(t, cfg.Vehicles, 3)
	assert.Equal(t, "truck", cfg.Vehicles[0].Name)
	assert.Equal(t, "player", cfg.Vehicles[0].Behavior)
	assert.Equal(t, "runner", cfg.Vehicles[1].Name)
	assert.Equal(t, "chaser", cfg.Vehicles[2].Name)
	assert.Equal(t, 100.0, cfg.Vehicles[1].Extra["points"])
	assert.Equal(t, 250.0, cfg.Vehicles[2].Extra["points"])
}

func TestLoadDerived(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2400.0, cfg.Derived.WorldW)
	assert.Equal(t, 1800.0, cfg.Derived.WorldH)
	assert.Equal(t, float32(1280), cfg.Derived.ScreenW32)
	assert.Equal(t, 0, cfg.Derived.VehicleIndex["truck"])
	assert.Equal(t, 2, cfg.Derived.VehicleIndex["chaser"])
}

func TestLoadUserOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
world:
  width: 1000
combat:
  player_health: 5
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.World.Width, "overridden field")
	assert.Equal(t, 1800, cfg.World.Height, "untouched field keeps its default")
	assert.Equal(t, 5, cfg.Combat.PlayerHealth)
	assert.Equal(t, 1000.0, cfg.Derived.WorldW, "derived values follow the overlay")
	assert.Len(t, cfg.Vehicles, 3, "vehicle list untouched without an override")
}

func TestLoadVehicleListReplaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vehicles:
  - name: kart
    behavior: player
    width: 10
    height: 16
    max_speed: 150
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Vehicles, 1)
	assert.Equal(t, "kart", cfg.Vehicles[0].Name)
	// Zero-valued tuning picks up working defaults.
	assert.Equal(t, 0.5, cfg.Vehicles[0].Physics.RadiusMultiplier)
	assert.Equal(t, 1.0, cfg.Vehicles[0].Physics.WaterQueryMultiplier)
	assert.Equal(t, -0.3, cfg.Vehicles[0].Physics.BounceFactor)
	assert.Equal(t, 0, cfg.Derived.VehicleIndex["kart"])
}

func TestLoadWorldDefaultsToScreen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
world:
  width: 0
  height: 0
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280.0, cfg.Derived.WorldW)
	assert.Equal(t, 720.0, cfg.Derived.WorldH)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicles: {not: [a, list"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.World, back.World)
	assert.Equal(t, cfg.Vehicles, back.Vehicles)
}
