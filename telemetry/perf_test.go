package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSim)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseEffects)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}

	if len(stats.PhaseAvg) == 0 {
		t.Error("expected phase averages to be populated")
	}

	if _, ok := stats.PhaseAvg[PhaseSim]; !ok {
		t.Error("expected sim phase to be tracked")
	}

	if _, ok := stats.PhaseAvg[PhaseEffects]; !ok {
		t.Error("expected effects phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSim)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}

	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero average with no samples")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps with no samples")
	}
}

func TestPerfCollector_RecordFrame(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration <= 0 {
		t.Error("expected positive frame duration after two frames")
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS after two frames")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 500 * time.Microsecond,
		MinTickDuration: 100 * time.Microsecond,
		MaxTickDuration: 900 * time.Microsecond,
		TicksPerSecond:  2000,
		FPS:             60,
		PhasePct: map[string]float64{
			PhaseSim:    40,
			PhaseRender: 50,
			PhaseInput:  10,
		},
	}

	row := stats.ToCSV(1234)

	if row.WindowEnd != 1234 {
		t.Errorf("WindowEnd = %d, want 1234", row.WindowEnd)
	}
	if row.AvgTickUS != 500 {
		t.Errorf("AvgTickUS = %d, want 500", row.AvgTickUS)
	}
	if row.SimPct != 40 || row.RenderPct != 50 || row.InputPct != 10 {
		t.Errorf("phase pcts = %v/%v/%v, want 40/50/10", row.SimPct, row.RenderPct, row.InputPct)
	}
	if row.CombatPct != 0 {
		t.Errorf("CombatPct = %v, want 0 for untracked phase", row.CombatPct)
	}
}

func TestPerfStats_ZapFields(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: time.Millisecond,
		TicksPerSecond:  1000,
		PhasePct:        map[string]float64{PhaseSim: 75.0},
	}

	fields := stats.ZapFields()

	keys := make(map[string]bool, len(fields))
	for _, f := range fields {
		keys[f.Key] = true
	}

	for _, want := range []string{"avg_tick_us", "min_tick_us", "max_tick_us", "ticks_per_sec", "sim_pct"} {
		if !keys[want] {
			t.Errorf("missing field %q", want)
		}
	}

	if keys["fps"] {
		t.Error("fps field present with zero FPS")
	}
}
