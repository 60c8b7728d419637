package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rranshous/raceon/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager when output disabled")
	}

	// All methods must be safe on a nil manager.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry error: %v", err)
	}
	if err := om.WriteEvent(EventRow{}); err != nil {
		t.Errorf("nil WriteEvent error: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("nil WritePerf error: %v", err)
	}
	if om.RunID() != "" || om.Dir() != "" {
		t.Error("nil manager should report empty run ID and dir")
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close error: %v", err)
	}
}

func TestOutputManagerCreatesRunDir(t *testing.T) {
	base := t.TempDir()

	om, err := NewOutputManager(base)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}
	defer om.Close()

	if om.RunID() == "" {
		t.Error("expected non-empty run ID")
	}
	if om.Dir() != filepath.Join(base, om.RunID()) {
		t.Errorf("Dir = %q, want base/runID", om.Dir())
	}

	for _, name := range []string{"telemetry.csv", "events.csv", "perf.csv"} {
		if _, err := os.Stat(filepath.Join(om.Dir(), name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestOutputManagerWritesHeadersOnce(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 10, LiveVehicles: 2}); err != nil {
		t.Fatalf("WriteTelemetry error: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 20, LiveVehicles: 3}); err != nil {
		t.Fatalf("WriteTelemetry error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(om.Dir(), "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("telemetry.csv has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("header missing window_end: %q", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Error("second line repeats the header")
	}
}

func TestOutputManagerWritesEvents(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	row := EventRow{Tick: 42, Event: "vehicle_spawned", VehicleID: 7, VehicleType: "runner", X: 100, Y: 200}
	if err := om.WriteEvent(row); err != nil {
		t.Fatalf("WriteEvent error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(om.Dir(), "events.csv"))
	if err != nil {
		t.Fatalf("reading events.csv: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "vehicle_type") {
		t.Error("events.csv header missing vehicle_type")
	}
	if !strings.Contains(text, "vehicle_spawned") {
		t.Error("events.csv missing written row")
	}
}

func TestOutputManagerWritesConfig(t *testing.T) {
	om, err := NewOutputManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}
	defer om.Close()

	cfg := &config.Config{}
	cfg.World.Width = 2400
	cfg.World.Height = 1800

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(om.Dir(), "config.yaml"))
	if err != nil {
		t.Fatalf("reading config.yaml: %v", err)
	}
	if !strings.Contains(string(data), "2400") {
		t.Error("config.yaml missing written world width")
	}
}
