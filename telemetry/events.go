// Package telemetry provides run statistics, event logs, and performance
// timing for headless and windowed runs.
package telemetry

import (
	"fmt"

	"github.com/rranshous/raceon/events"
)

// EventRow is one bus event flattened for events.csv.
type EventRow struct {
	Tick        int64   `csv:"tick"`
	SimTimeSec  float64 `csv:"sim_time"`
	Event       string  `csv:"event"`
	VehicleID   uint64  `csv:"vehicle_id"`
	VehicleType string  `csv:"vehicle_type"`
	X           float64 `csv:"x"`
	Y           float64 `csv:"y"`
	Speed       float64 `csv:"speed"`
	Detail      string  `csv:"detail"`
}

// RowFromEvent flattens a bus event into a CSV row.
func RowFromEvent(tick int64, simTime float64, e events.Event) EventRow {
	row := EventRow{
		Tick:       tick,
		SimTimeSec: simTime,
		Event:      e.Type.String(),
		X:          e.Position.X,
		Y:          e.Position.Y,
		Speed:      e.Velocity.Length(),
	}
	if e.Vehicle != nil {
		row.VehicleID = e.Vehicle.ID
	}
	row.VehicleType = e.TypeName

	switch e.Type {
	case events.VehicleDestroyed:
		row.Detail = e.Cause.String()
	case events.PlayerWaterHit, events.EnemyWaterHit, events.PlayerRockHit, events.EnemyRockHit:
		row.Detail = fmt.Sprintf("overlap=%.2f", e.Overlap)
	}

	return row
}
