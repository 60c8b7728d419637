package physics

import (
	"math"

	"github.com/rranshous/raceon/entity"
)

// Overlap reports whether two vehicles' collision circles intersect.
func Overlap(a, b *entity.Vehicle) bool {
	reach := a.CollisionRadius() + b.CollisionRadius()
	return a.Position.DistanceSq(b.Position) < reach*reach
}

// RamWinner decides who landed the hit in a vehicle-on-vehicle collision:
// the one whose front point sits closer to the other's center, by more than
// tolerance. A near-tie is nobody's win and returns nil.
func RamWinner(a, b *entity.Vehicle, frontOffset, tolerance float64) *entity.Vehicle {
	distA := a.Front(frontOffset).Distance(b.Position)
	distB := b.Front(frontOffset).Distance(a.Position)

	if math.Abs(distA-distB) <= tolerance {
		return nil
	}
	if distA < distB {
		return a
	}
	return b
}
