package physics

import "github.com/openbrawl/arenasim/internal/game/entity"

// Speed band enforced by the governor. The lower bound keeps the simulation
// from stalling; the upper bound caps the velocity range the collision model
// has to handle.
const (
	MinSpeed = 1.5
	MaxSpeed = 8.0
)

// Govern clamps every active entity's speed into [MinSpeed, MaxSpeed] by
// rescaling its velocity vector to exactly the violated bound. An entity at
// rest has no direction to rescale; it is restarted at MinSpeed along the
// positive x axis as the deterministic fallback.
//
// Postcondition: Every active entity's Speed() is in [MinSpeed, MaxSpeed].
func Govern(reg *entity.Registry) {
	for _, i := range reg.ActiveIndices() {
		e := reg.At(i)
		speed := e.Speed()
		switch {
		case speed == 0:
			e.VX = MinSpeed
			e.VY = 0
		case speed < MinSpeed:
			scale := MinSpeed / speed
			e.VX *= scale
			e.VY *= scale
		case speed > MaxSpeed:
			scale := MaxSpeed / speed
			e.VX *= scale
			e.VY *= scale
		}
	}
}
