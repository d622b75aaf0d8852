// Package physics advances entity kinematics each tick: position integration
// with wall bounces, and the speed governor that keeps every entity inside
// the configured speed band.
package physics

import (
	"github.com/openbrawl/arenasim/internal/game/arena"
	"github.com/openbrawl/arenasim/internal/game/entity"
)

// Restitution is the velocity retention factor on a wall bounce: each bounce
// loses 5% of the reflected component.
const Restitution = 0.95

// Integrate advances every active entity by one tick of simulated time
// (position += velocity) and resolves arena-boundary bounces. Both axes are
// checked independently, so a corner hit reflects both components. Positions
// are clamped back inside the arena so an entity can never escape bounds.
//
// Precondition: a must have positive dimensions.
// Postcondition: For every active entity, Radius <= X <= a.Width-Radius and
// Radius <= Y <= a.Height-Radius.
func Integrate(reg *entity.Registry, a arena.Arena) {
	for _, i := range reg.ActiveIndices() {
		e := reg.At(i)
		e.X += e.VX
		e.Y += e.VY

		if e.X-e.Radius <= 0 {
			e.X = e.Radius
			e.VX = -e.VX * Restitution
		} else if e.X+e.Radius >= a.Width {
			e.X = a.Width - e.Radius
			e.VX = -e.VX * Restitution
		}

		if e.Y-e.Radius <= 0 {
			e.Y = e.Radius
			e.VY = -e.VY * Restitution
		} else if e.Y+e.Radius >= a.Height {
			e.Y = a.Height - e.Radius
			e.VY = -e.VY * Restitution
		}
	}
}
