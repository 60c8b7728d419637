package game

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rranshous/raceon/telemetry"
)

// NewLogger builds the process logger. Headless runs emit sampled JSON for
// downstream tooling; windowed runs get a human-readable console encoder.
func NewLogger(headless, debug bool) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	cfg := zap.Config{
		Level:             level,
		Development:       false,
		Encoding:          "json",
		EncoderConfig:     zap.NewProductionEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	if headless {
		cfg.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	} else {
		cfg.Development = true
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return cfg.Build()
}

// logWindowStats emits the aggregated telemetry window when -log-stats is
// on. Perf numbers ride along so a single line tells the whole story.
func (g *Game) logWindowStats(row telemetry.WindowStats) {
	if !g.logStats {
		return
	}
	fields := []zap.Field{
		zap.Int64("window_end", row.WindowEndTick),
		zap.Float64("sim_time", row.SimTimeSec),
		zap.Int("live", row.LiveVehicles),
		zap.Int("score", row.Score),
		zap.Int("spawned", row.Spawned),
		zap.Int("escaped", row.Escaped),
		zap.Int("wrecked_by_player", row.WreckedByPlayer),
		zap.Float64("speed_mean", row.SpeedMean),
		zap.Float64("speed_p90", row.SpeedP90),
	}
	fields = append(fields, g.perf.Stats().ZapFields()...)
	g.telLog.Info("window stats", fields...)
}
