package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Fleet state at window end
	LiveVehicles int `csv:"live"`
	Score        int `csv:"score"`

	// Lifecycle events during window
	Spawned         int `csv:"spawned"`
	Escaped         int `csv:"escaped"`
	WreckedByPlayer int `csv:"wrecked_by_player"`
	WreckedOther    int `csv:"wrecked_other"`

	// Obstacle collisions during window
	PlayerWaterHits int `csv:"player_water_hits"`
	PlayerRockHits  int `csv:"player_rock_hits"`
	EnemyWaterHits  int `csv:"enemy_water_hits"`
	EnemyRockHits   int `csv:"enemy_rock_hits"`

	// Speed distribution (sampled at window end, absolute values)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// SpeedDistribution summarizes a sample of vehicle speeds.
// Quantiles are empirical; returns all zeros for an empty sample.
func SpeedDistribution(speeds []float64) (mean, std, p10, p50, p90 float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := append([]float64(nil), speeds...)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.1, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p10, p50, p90
}
